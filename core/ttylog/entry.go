package ttylog

// FD identifies the stream an IO event was seen on.
type FD int

const (
	FDStdin FD = iota
	FDStdout
	FDStderr
)

// Entry is a single recorded terminal event.
type Entry struct {
	TimestampMicros int64
	FD              FD
	Data            []byte
}
