package mocks

// MockReplayFinder はテスト用のReplayFinderモック
type MockReplayFinder struct {
	Paths []string
	Error error
	Dirs  []string
}

// Find は設定されたパスを返します
func (m *MockReplayFinder) Find(dir string) ([]string, error) {
	m.Dirs = append(m.Dirs, dir)
	if m.Error != nil {
		return nil, m.Error
	}
	return m.Paths, nil
}
