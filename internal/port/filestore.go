package port

// FileStore is the local archive directory holding uploaded audio, JSON
// snapshots and rendered PDFs. Names are flat (no subdirectories); callers get
// back the sanitized name actually used.
type FileStore interface {
	Save(name string, data []byte) (string, error)
	Open(name string) ([]byte, error)
	Exists(name string) bool
	Path(name string) (string, error)
}
