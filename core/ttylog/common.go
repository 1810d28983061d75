package ttylog

import (
	"io"
	"log"
	"sync"
	"time"

	"github.com/osama1998H/ocean/core/vos"
)

// LogSink receives log events.
type LogSink func(e *Entry) error

// LogSource adapts log readers.
type LogSource interface {
	// Next fetches the next available log entry. It returns io.EOF if the source
	// has no more log entries.
	Next() (*Entry, error)
}

// NewRealTimePlayback plays back the results in real-time.
// If maxSleep > 0, it's used as the maximum duration to pause.
func NewRealTimePlayback(maxSleep time.Duration, next LogSink) LogSink {
	var once sync.Once
	var prevTimeMicros int64

	return func(entry *Entry) error {
		once.Do(func() {
			prevTimeMicros = entry.TimestampMicros
		})

		delta := entry.TimestampMicros - prevTimeMicros
		prevTimeMicros = entry.TimestampMicros

		if maxSleep > 0 {
			sleepDuration := time.Duration(delta) * time.Microsecond
			if sleepDuration > maxSleep {
				sleepDuration = maxSleep
			}
			time.Sleep(sleepDuration)
		}

		return next(entry)
	}
}

// NewClientOutput writes stdout and stderr to the given writer.
func NewClientOutput(w io.Writer) LogSink {
	return func(entry *Entry) error {
		if entry.FD == FDStdin {
			return nil
		}
		_, err := w.Write(entry.Data)
		return err
	}
}

// Replay reads a stream of events to a callback.
func Replay(recording LogSource, callback LogSink) error {
	for {
		entry, err := recording.Next()
		switch {
		case err == io.EOF:
			return nil
		case err != nil:
			return err
		}

		if err := callback(entry); err != nil {
			return err
		}
	}
}

// Recorder copies everything passing through a set of streams to a LogSink.
type Recorder struct {
	*vos.VIOAdapter
	mutex  sync.Mutex
	output LogSink
	// Logger receives sink failures, may be nil.
	Logger *log.Logger
}

func (r *Recorder) recordIO(fd FD, data []byte, dest func([]byte) (int, error)) (int, error) {
	eventTime := time.Now()
	amount, err := dest(data)
	if amount > 0 {
		r.mutex.Lock()
		e2 := r.output(&Entry{
			TimestampMicros: eventTime.UnixMicro(),
			FD:              fd,
			Data:            append([]byte(nil), data[:amount]...),
		})
		r.mutex.Unlock()
		if e2 != nil && r.Logger != nil {
			r.Logger.Printf("couldn't record terminal output: %v", e2)
		}
	}
	return amount, err
}

var _ vos.VIO = (*Recorder)(nil)

type recorderReadCloser struct {
	r       *Recorder
	fd      FD
	wrapped io.ReadCloser
}

var _ io.ReadCloser = (*recorderReadCloser)(nil)

func (rc *recorderReadCloser) Read(p []byte) (int, error) {
	return rc.r.recordIO(rc.fd, p, rc.wrapped.Read)
}

func (rc *recorderReadCloser) Close() error {
	return rc.wrapped.Close()
}

type recorderWriteCloser struct {
	r       *Recorder
	fd      FD
	wrapped io.WriteCloser
}

var _ io.WriteCloser = (*recorderWriteCloser)(nil)

func (rc *recorderWriteCloser) Write(p []byte) (int, error) {
	return rc.r.recordIO(rc.fd, p, rc.wrapped.Write)
}

func (rc *recorderWriteCloser) Close() error {
	return rc.wrapped.Close()
}

// NewRecorder creates a recorder that forwards all events to output.
func NewRecorder(toWrap vos.VIO, output LogSink) *Recorder {
	recorder := &Recorder{
		output: output,
	}

	recorder.VIOAdapter = vos.NewVIOAdapter(
		&recorderReadCloser{fd: FDStdin, r: recorder, wrapped: toWrap.Stdin()},
		&recorderWriteCloser{fd: FDStdout, r: recorder, wrapped: toWrap.Stdout()},
		&recorderWriteCloser{fd: FDStderr, r: recorder, wrapped: toWrap.Stderr()},
	)

	return recorder
}
