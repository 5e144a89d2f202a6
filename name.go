package namelist

// Name is a single entry scraped from a name listing page.
type Name struct {
	Text        string `json:"text"`
	Usage       string `json:"usage"`
	Description string `json:"description"`
}

// NameKind selects which listing site to scrape.
type NameKind string

// Supported name kinds.
const (
	FirstName NameKind = "first_name"
	Surname   NameKind = "surname"
)

// Base URLs of the listing sites. Each ends with a slash so page paths can be
// appended directly.
const (
	FirstNameBaseURL = "https://www.behindthename.com/"
	SurnameBaseURL   = "https://surnames.behindthename.com/"
)

var baseURLs = map[NameKind]string{
	FirstName: FirstNameBaseURL,
	Surname:   SurnameBaseURL,
}

// NameKinds returns all supported kinds in declaration order.
func NameKinds() []NameKind {
	return []NameKind{FirstName, Surname}
}

// ParseNameKind converts s to a NameKind.
// Returns EINVALID if s does not name a supported kind.
func ParseNameKind(s string) (NameKind, error) {
	kind := NameKind(s)
	if _, ok := baseURLs[kind]; !ok {
		return "", Errorf(EINVALID, "unknown name kind %q", s)
	}
	return kind, nil
}

// BaseURL returns the listing site for the kind.
// Returns EINVALID if the kind is not registered.
func BaseURL(kind NameKind) (string, error) {
	u, ok := baseURLs[kind]
	if !ok {
		return "", Errorf(EINVALID, "no base URL for name kind %q", string(kind))
	}
	return u, nil
}
