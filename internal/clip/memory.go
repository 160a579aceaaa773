package clip

import "sync"

// Memory is an in-process clipboard. It holds either text or an image, like
// a real clipboard, and can be told to fail so callers' skip paths can be
// exercised.
type Memory struct {
	mu     sync.Mutex
	text   *string
	image  []byte
	fail   error
	writes int
}

// NewMemory returns an empty Memory clipboard.
func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Name() string { return "memory" }

func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return "", m.fail
	}
	if m.text == nil {
		return "", ErrEmpty
	}
	return *m.text, nil
}

func (m *Memory) ReadImage() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	if m.image == nil {
		return nil, ErrEmpty
	}
	return append([]byte(nil), m.image...), nil
}

func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.text = &text
	m.image = nil
	m.writes++
	return nil
}

func (m *Memory) Close() {}

// SetText puts text on the clipboard as if another application copied it.
func (m *Memory) SetText(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = &text
	m.image = nil
}

// SetImage puts image bytes on the clipboard as if another application copied them.
func (m *Memory) SetImage(b []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = nil
	m.image = append([]byte(nil), b...)
}

// Fail makes every subsequent call return err. A nil err restores normal
// behaviour.
func (m *Memory) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail = err
}

// Writes returns how many WriteText calls succeeded.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
