package clip

// headlessBackend is the backend for environments without a display server
// (headless Linux servers, containers, etc.). Every read reports the
// clipboard unavailable and writes are discarded.
type headlessBackend struct{}

// Headless returns the no-op backend.
func Headless() Backend { return headlessBackend{} }

func (headlessBackend) Name() string               { return "headless (no-op)" }
func (headlessBackend) ReadText() (string, error)  { return "", ErrUnavailable }
func (headlessBackend) ReadImage() ([]byte, error) { return nil, ErrUnavailable }
func (headlessBackend) WriteText(_ string) error   { return nil }
func (headlessBackend) Close()                     {}
