package simulator

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/adhamgad/surplusim/internal/cloudwriter"
	"github.com/adhamgad/surplusim/internal/models"
	"github.com/adhamgad/surplusim/internal/output"
	"github.com/adhamgad/surplusim/internal/simulator/producers"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

type OutputDestination interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

type ConsoleOutput struct{}

func (c *ConsoleOutput) WriteMessage(topic string, msg []byte) error {
	out := fmt.Sprintf("[%s] %s\n", topic, string(msg))
	if _, err := os.Stdout.Write([]byte(out)); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	_ = os.Stdout.Sync()
	return nil
}

func (c *ConsoleOutput) Close() error { return nil }

type JSONOutput struct {
	basePath string
	folder   string
	files    map[string]*os.File
}

func NewJSONOutput(basePath, folder string) *JSONOutput {
	return &JSONOutput{
		basePath: basePath,
		folder:   folder,
		files:    make(map[string]*os.File),
	}
}

func (j *JSONOutput) WriteMessage(topic string, msg []byte) error {
	event, partitionPath, err := partitionFor(msg)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(j.basePath, j.folder, topic, partitionPath)
	if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
		return err
	}

	fileKey := fmt.Sprintf("%s_%s", topic, partitionPath)
	file, ok := j.files[fileKey]
	if !ok {
		file, err = os.Create(filepath.Join(fullPath, "data.json"))
		if err != nil {
			return err
		}
		j.files[fileKey] = file
	}

	jsonData, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if _, err := file.Write(jsonData); err != nil {
		return err
	}
	_, err = file.WriteString("\n")
	return err
}

func (j *JSONOutput) Close() error {
	for _, file := range j.files {
		if err := file.Close(); err != nil {
			return err
		}
	}
	return nil
}

type CSVOutput struct {
	basePath string
	folder   string
	files    map[string]*csv.Writer
	headers  map[string][]string
}

func NewCSVOutput(basePath, folder string) *CSVOutput {
	return &CSVOutput{
		basePath: basePath,
		folder:   folder,
		files:    make(map[string]*csv.Writer),
		headers:  make(map[string][]string),
	}
}

func (c *CSVOutput) WriteMessage(topic string, msg []byte) error {
	event, partitionPath, err := partitionFor(msg)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(c.basePath, c.folder, topic, partitionPath)
	if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
		return err
	}

	fileKey := fmt.Sprintf("%s_%s", topic, partitionPath)
	csvWriter, ok := c.files[fileKey]
	if !ok {
		file, err := os.Create(filepath.Join(fullPath, "data.csv"))
		if err != nil {
			return err
		}
		csvWriter = csv.NewWriter(file)
		c.files[fileKey] = csvWriter

		headers := c.getHeaders(event)
		if err := csvWriter.Write(headers); err != nil {
			return err
		}
		c.headers[fileKey] = headers
	}

	row := make([]string, len(c.headers[fileKey]))
	for i, header := range c.headers[fileKey] {
		value, ok := event[header]
		if !ok {
			row[i] = ""
		} else {
			row[i] = fmt.Sprintf("%v", value)
		}
	}
	if err := csvWriter.Write(row); err != nil {
		return err
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

func (c *CSVOutput) getHeaders(event map[string]interface{}) []string {
	var headers []string
	for key := range event {
		headers = append(headers, key)
	}
	sort.Strings(headers)
	return headers
}

func (c *CSVOutput) Close() error {
	for _, csvWriter := range c.files {
		csvWriter.Flush()
		if err := csvWriter.Error(); err != nil {
			return err
		}
	}
	return nil
}

type ParquetOutput struct {
	basePath           string
	folder             string
	mu                 sync.Mutex
	writers            map[string]*writer.ParquetWriter
	files              map[string]source.ParquetFile
	cloudWriterFactory cloudwriter.CloudWriterFactory
	cloudBucketName    string
}

func NewParquetOutput(config *models.Config) (*ParquetOutput, error) {
	p := &ParquetOutput{
		basePath: config.OutputPath,
		folder:   config.OutputFolder,
		writers:  make(map[string]*writer.ParquetWriter),
		files:    make(map[string]source.ParquetFile),
	}

	if config.OutputDestination != "local" {
		var factory cloudwriter.CloudWriterFactory
		var err error

		switch config.CloudStorage.Provider {
		case "s3":
			factory, err = cloudwriter.NewS3WriterFactory(config.CloudStorage.Region)
		default:
			return nil, fmt.Errorf("unsupported cloud storage provider: %s", config.CloudStorage.Provider)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
		}

		p.cloudWriterFactory = factory
		p.cloudBucketName = config.CloudStorage.BucketName
	}

	p.cleanup()
	return p, nil
}

func (p *ParquetOutput) WriteMessage(topic string, msg []byte) error {
	_, partitionPath, err := partitionFor(msg)
	if err != nil {
		return err
	}

	record, err := decodeRecord(topic, msg)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(p.basePath, p.folder, topic, partitionPath)
	if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
		return err
	}

	writerKey := fmt.Sprintf("%s_%s", topic, partitionPath)
	p.mu.Lock()
	defer p.mu.Unlock()

	pw, ok := p.writers[writerKey]
	if !ok {
		pw, err = p.createNewWriter(writerKey, fullPath, topic)
		if err != nil {
			return fmt.Errorf("failed to create new writer: %w", err)
		}
	}

	if err := pw.Write(record); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// cleanup removes stale .parquet files from earlier runs so partial output
// never mixes with fresh output.
func (p *ParquetOutput) cleanup() {
	fullPath := filepath.Join(p.basePath, p.folder)
	err := filepath.Walk(fullPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ".parquet" {
			if err := os.Remove(path); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Error cleaning up Parquet files: %v", err)
	}
}

func (p *ParquetOutput) createNewWriter(writerKey, fullPath, topic string) (*writer.ParquetWriter, error) {
	var fw source.ParquetFile
	var err error
	if p.cloudWriterFactory != nil {
		objectPath := filepath.Join(p.folder, topic, fullPath, "data.parquet")
		cloudWriter, err := p.cloudWriterFactory.NewWriter(p.cloudBucketName, objectPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud file writer: %w", err)
		}
		fw = NewCloudParquetFile(cloudWriter)
	} else {
		filePath := filepath.Join(fullPath, "data.parquet")
		fw, err = local.NewLocalFileWriter(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create local file writer: %w", err)
		}
	}

	sc, err := GetSchema(topic)
	if err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	pw, err := writer.NewParquetWriter(fw, nil, 4)
	if err != nil {
		return nil, fmt.Errorf("failed to create ParquetWriter: %w", err)
	}
	pw.SchemaHandler = sc

	p.writers[writerKey] = pw
	p.files[writerKey] = fw
	return pw, nil
}

func (p *ParquetOutput) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var lastErr error
	for key, pw := range p.writers {
		if pw == nil {
			log.Printf("Warning: Nil writer found for key: %s", key)
			continue
		}
		if err := pw.WriteStop(); err != nil {
			lastErr = err
			log.Printf("Error closing writer for key %s: %v", key, err)
		}
		if f, ok := p.files[key]; ok {
			if err := f.Close(); err != nil {
				lastErr = err
				log.Printf("Error closing file for key %s: %v", key, err)
			}
		}
	}
	return lastErr
}

// CloudParquetFile adapts a streaming cloud writer to the parquet source
// interface. Cloud objects are write-once, so reads and seek-from-end fail.
type CloudParquetFile struct {
	cloudWriter cloudwriter.CloudWriter
	offset      int64
}

func NewCloudParquetFile(cloudWriter cloudwriter.CloudWriter) *CloudParquetFile {
	return &CloudParquetFile{cloudWriter: cloudWriter}
}

func (c *CloudParquetFile) Open(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *CloudParquetFile) Create(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *CloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	case io.SeekEnd:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *CloudParquetFile) Read(p []byte) (n int, err error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *CloudParquetFile) Write(p []byte) (n int, err error) {
	return c.cloudWriter.Write(p)
}

func (c *CloudParquetFile) Close() error {
	return c.cloudWriter.Close()
}

// partitionFor decodes the message and derives the date partition from its
// timestamp field.
func partitionFor(msg []byte) (map[string]interface{}, string, error) {
	var event map[string]interface{}
	if err := json.Unmarshal(msg, &event); err != nil {
		return nil, "", err
	}

	timestamp, ok := event["timestamp"].(float64)
	if !ok {
		return nil, "", fmt.Errorf("invalid timestamp")
	}

	eventTime := time.Unix(int64(timestamp), 0)
	year, month, day := eventTime.Date()
	return event, fmt.Sprintf("year=%d/month=%02d/day=%02d", year, month, day), nil
}

func (s *Simulator) determineOutputDestination() (OutputDestination, error) {
	if s.Config.KafkaEnabled {
		saramaProducer, err := producers.NewSaramaProducer(s.Config)
		if err != nil {
			return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
		}
		return saramaProducer, nil
	}

	if s.Config.OutputFormat == "postgres" {
		postgresOutput, err := output.NewPostgresOutput(&s.Config.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to create Postgres output: %w", err)
		}
		return postgresOutput, nil
	}

	if s.Config.OutputPath != "" {
		switch s.Config.OutputFormat {
		case "parquet":
			return NewParquetOutput(s.Config)
		case "json":
			return NewJSONOutput(s.Config.OutputPath, s.Config.OutputFolder), nil
		case "csv":
			return NewCSVOutput(s.Config.OutputPath, s.Config.OutputFolder), nil
		default:
			return nil, fmt.Errorf("unsupported output format: %s", s.Config.OutputFormat)
		}
	}

	return &ConsoleOutput{}, nil
}

// writeReport stamps every record with the emission time and sends it to the
// configured destination, breakdown rows first, comparison rows last.
func (s *Simulator) writeReport(report *models.SimulationReport) error {
	destination, err := s.determineOutputDestination()
	if err != nil {
		return err
	}
	defer func() {
		if err := destination.Close(); err != nil {
			log.Printf("Error closing output destination: %v", err)
		}
	}()

	now := time.Now().Unix()

	for _, result := range report.Results {
		for _, row := range result.Restaurants {
			row.Timestamp = now
			msg, err := json.Marshal(row)
			if err != nil {
				return fmt.Errorf("failed to marshal breakdown row: %w", err)
			}
			if err := destination.WriteMessage(TopicRestaurantBreakdown, msg); err != nil {
				return fmt.Errorf("failed to write breakdown row: %w", err)
			}
		}
	}

	for _, metrics := range report.Comparison {
		metrics.Timestamp = now
		msg, err := json.Marshal(metrics)
		if err != nil {
			return fmt.Errorf("failed to marshal metrics row: %w", err)
		}
		if err := destination.WriteMessage(TopicAlgorithmMetrics, msg); err != nil {
			return fmt.Errorf("failed to write metrics row: %w", err)
		}
	}

	return nil
}
