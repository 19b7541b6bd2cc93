package ui

type DiscardUi struct {
}

func (d DiscardUi) Output(_ string) error {
	return nil
}

func (d DiscardUi) OutputError(_ error) error {
	return nil
}

func (d DiscardUi) NewProgressBar() ProgressBar {
	return emptyProgressBar{}
}

func (d DiscardUi) Input(_ string) (string, error) {
	return "", nil
}

func NewDiscardUi() UserInterface {
	return &DiscardUi{}
}

var _ UserInterface = (*DiscardUi)(nil)
