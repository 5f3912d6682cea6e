package cloudwriter

// CloudWriter streams one object to cloud storage; the object becomes
// visible on Close.
type CloudWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

type CloudWriterFactory interface {
	NewWriter(bucket, objectPath string) (CloudWriter, error)
}
