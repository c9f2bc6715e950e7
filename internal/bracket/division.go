package bracket

import "fmt"

type Division string

const (
	MixedOpen       Division = "MXO"
	MensOpen        Division = "MO"
	WomensOpen      Division = "WO"
	SeniorMixedOpen Division = "SMX"
	Mens30          Division = "M30"
	Mens40          Division = "M40"
	Womens27        Division = "W27"
)

type Gender string

const (
	Male    Gender = "M"
	Female  Gender = "F"
	Unknown Gender = "U"
)

var divisionNames = map[Division]string{
	MixedOpen:       "Mixed Open",
	MensOpen:        "Mens Open",
	WomensOpen:      "Womens Open",
	SeniorMixedOpen: "Senior Mix Open",
	Mens30:          "Mens 30",
	Mens40:          "Mens 40",
	Womens27:        "Women 27",
}

func (d Division) Valid() bool {
	_, ok := divisionNames[d]
	return ok
}

func (d Division) Name() string {
	if name, ok := divisionNames[d]; ok {
		return name
	}
	return string(d)
}

// PlayerGender is the gender every player of a division must have,
// Unknown for mixed divisions.
func PlayerGender(d Division) (Gender, error) {
	switch d {
	case WomensOpen, Womens27:
		return Female, nil
	case MensOpen, Mens30, Mens40:
		return Male, nil
	case MixedOpen, SeniorMixedOpen:
		return Unknown, nil
	}
	return "", fmt.Errorf("division %q is not supported", d)
}
