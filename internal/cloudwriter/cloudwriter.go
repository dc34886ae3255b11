package cloudwriter

// CloudWriter streams one exported demand dataset object. Bytes are
// accepted incrementally; the object becomes visible on Close.
type CloudWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

// CloudWriterFactory creates writers bound to a bucket and object key.
type CloudWriterFactory interface {
	NewWriter(bucket, objectPath string) (CloudWriter, error)
}
