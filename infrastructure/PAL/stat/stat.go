package stat

import (
	"errors"
	"os"
)

type Stat interface {
	Stat(name string) (os.FileInfo, error)
}

type DefaultStat struct {
}

func NewDefaultStat() Stat {
	return &DefaultStat{}
}

func (d DefaultStat) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Exists reports whether name exists. Only os.ErrNotExist counts as absence;
// any other stat failure is returned.
func Exists(s Stat, name string) (bool, error) {
	if _, statErr := s.Stat(name); statErr != nil {
		if errors.Is(statErr, os.ErrNotExist) {
			return false, nil
		}
		return false, statErr
	}
	return true, nil
}
