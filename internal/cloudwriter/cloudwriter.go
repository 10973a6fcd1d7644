// Package cloudwriter buffers report exports in memory and flushes them to
// object storage on Close.
package cloudwriter

type CloudWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

type CloudWriterFactory interface {
	NewWriter(bucket, objectPath, contentType string) (CloudWriter, error)
}
