package transform

// Bank is an ordered sequence of matrices and color transforms. Bank 0
// in a Document is the primary bank, embedded in the file header;
// subsequent banks are introduced by a bank-begin tag carrying a name.
type Bank struct {
	Name    string
	Matrices []Matrix
	Colors   []ColorTransform
}

// NewBank returns an empty, named bank. The primary bank's name is "".
func NewBank(name string) *Bank {
	return &Bank{Name: name}
}
