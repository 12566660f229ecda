// Package document validates Brazilian taxpayer documents (CPF and CNPJ)
// All functions are pure and safe for concurrent use
package document

// Kind tags a document by the length of its digit form
type Kind uint8

const (
	// KindNone is reported for empty input where no classification happens
	KindNone Kind = iota
	// KindCPF is an 11 digit individual taxpayer id
	KindCPF
	// KindCNPJ is a 14 digit corporate taxpayer id
	KindCNPJ
	// KindSizeError is any other digit count
	KindSizeError
)

const (
	cpfLen  = 11
	cnpjLen = 14
)

// weight tables, one entry per digit fed into the sum
var (
	cpfWeights1  = [9]int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	cpfWeights2  = [10]int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights1 = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// String returns the wire name of the kind
func (k Kind) String() string {
	switch k {
	case KindCPF:
		return "CPF"
	case KindCNPJ:
		return "CNPJ"
	case KindSizeError:
		return "SIZE_ERROR"
	default:
		return ""
	}
}

// MarshalText lets Kind render as its name in JSON
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Result is the outcome of Classify
type Result struct {
	Valid bool `json:"valid"`
	Kind  Kind `json:"kind"`
}

// Message returns the human readable reason for an invalid result
// valid results return an empty string
func (r Result) Message() string {
	if r.Valid {
		return ""
	}
	switch r.Kind {
	case KindCPF:
		return "invalid CPF: the number does not match the check digit calculation"
	case KindCNPJ:
		return "invalid CNPJ: the number does not match the check digit calculation"
	default:
		return "document must be a valid CPF (11 digits) or CNPJ (14 digits)"
	}
}

// Normalize strips every character that is not an ASCII digit
func Normalize(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			out = append(out, c)
		}
	}
	return string(out)
}

// ValidCPF reports whether s holds a CPF with matching check digits
// formatting characters are ignored
func ValidCPF(s string) bool {
	return validCPFDigits(Normalize(s))
}

// ValidCNPJ reports whether s holds a CNPJ with matching check digits
// formatting characters are ignored
func ValidCNPJ(s string) bool {
	return validCNPJDigits(Normalize(s))
}

// Classify strips formatting, tags the input by length and validates it
func Classify(s string) Result {
	if s == "" {
		return Result{}
	}
	d := Normalize(s)
	switch len(d) {
	case cpfLen:
		return Result{Valid: validCPFDigits(d), Kind: KindCPF}
	case cnpjLen:
		return Result{Valid: validCNPJDigits(d), Kind: KindCNPJ}
	default:
		return Result{Kind: KindSizeError}
	}
}

// ValidPhone reports whether s has 10 or 11 digits (area code plus number)
func ValidPhone(s string) bool {
	n := len(Normalize(s))
	return n == 10 || n == 11
}

func validCPFDigits(d string) bool {
	if len(d) != cpfLen || repeated(d) {
		return false
	}
	dv1 := checkDigit(d, cpfWeights1[:])
	dv2 := checkDigit(d, cpfWeights2[:])
	return digit(d[9]) == dv1 && digit(d[10]) == dv2
}

func validCNPJDigits(d string) bool {
	if len(d) != cnpjLen || repeated(d) {
		return false
	}
	dv1 := checkDigit(d, cnpjWeights1[:])
	dv2 := checkDigit(d, cnpjWeights2[:])
	return digit(d[12]) == dv1 && digit(d[13]) == dv2
}

// checkDigit sums d[i]*w[i] over len(w) leading digits and applies the mod 11 rule
// the second digit reads the first check digit from d, which is only correct
// when that digit already matches; a mismatch fails the first comparison anyway
func checkDigit(d string, w []int) int {
	sum := 0
	for i, wt := range w {
		sum += digit(d[i]) * wt
	}
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

func repeated(d string) bool {
	for i := 1; i < len(d); i++ {
		if d[i] != d[0] {
			return false
		}
	}
	return true
}

func digit(c byte) int { return int(c - '0') }
