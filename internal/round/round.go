package round

import "fmt"

type Category string

const (
	Gold   Category = "Gold"
	Silver Category = "Silver"
	Bronze Category = "Bronze"
	Wood   Category = "Wood"
)

// Lower value ranks first
var categoryPriority = map[Category]int{
	Gold:   0,
	Silver: 1,
	Bronze: 2,
	Wood:   3,
}

func (c Category) Valid() bool {
	_, ok := categoryPriority[c]
	return ok
}

// Kind is the stored code of a tournament phase
type Kind string

const (
	Final           Kind = "KO_1"
	Semifinal       Kind = "KO_2"
	Quarterfinal    Kind = "KO_4"
	RoundOf8        Kind = "KO_8"
	RoundOf16       Kind = "KO_16"
	ThirdPlace      Kind = "POS_3"
	FifthPlace      Kind = "POS_5"
	SixthPlace      Kind = "POS_6"
	SeventhPlace    Kind = "POS_7"
	EighthPlace     Kind = "POS_8"
	NinthPlace      Kind = "POS_9"
	TenthPlace      Kind = "POS_10"
	EleventhPlace   Kind = "POS_11"
	TwelfthPlace    Kind = "POS_12"
	ThirteenthPlace Kind = "POS_13"
	FourteenthPlace Kind = "POS_14"
	FifteenthPlace  Kind = "POS_15"
	SixteenthPlace  Kind = "POS_16"
	EighteenthPlace Kind = "POS_18"
	TwentiethPlace  Kind = "POS_20"
	Division        Kind = "Division"
	PoolA           Kind = "Pool_A"
	PoolB           Kind = "Pool_B"
	PoolC           Kind = "Pool_C"
	PoolD           Kind = "Pool_D"
	PoolE           Kind = "Pool_E"
	PoolF           Kind = "Pool_F"
	League          Kind = "Liga"
)

// Knockout and placement rounds, most decisive first.
// RoundOf8 and FourteenthPlace are valid codes but were never ranked.
var rankedKinds = []Kind{
	Final,
	ThirdPlace,
	Semifinal,
	FifthPlace,
	SixthPlace,
	SeventhPlace,
	EighthPlace,
	Quarterfinal,
	NinthPlace,
	TenthPlace,
	EleventhPlace,
	TwelfthPlace,
	ThirteenthPlace,
	FifteenthPlace,
	SixteenthPlace,
	RoundOf16,
	EighteenthPlace,
	TwentiethPlace,
	Division,
}

var kindPriority = func() map[Kind]int {
	m := make(map[Kind]int, len(rankedKinds))
	for i, k := range rankedKinds {
		m[k] = i
	}
	return m
}()

var pools = map[Kind]bool{
	PoolA: true,
	PoolB: true,
	PoolC: true,
	PoolD: true,
	PoolE: true,
	PoolF: true,
}

var unrankedKinds = map[Kind]bool{
	RoundOf8:        true,
	FourteenthPlace: true,
	League:          true,
}

func (k Kind) IsPool() bool {
	return pools[k]
}

func (k Kind) ranked() (int, bool) {
	p, ok := kindPriority[k]
	return p, ok
}

// Known reports whether k is one of the stored round codes, ranked or not.
func (k Kind) Known() bool {
	_, ok := kindPriority[k]
	return ok || pools[k] || unrankedKinds[k]
}

const MaxTeams = 20

// Key identifies one sortable phase of a tournament.
type Key struct {
	Category Category `yaml:"category"`
	Kind     Kind     `yaml:"round"`
	Teams    int      `yaml:"teams"`
}

// DefaultKey mirrors the defaults of a freshly created phase.
var DefaultKey = Key{Category: Gold, Kind: PoolA, Teams: 2}

func NewKey(category Category, kind Kind, teams int) (Key, error) {
	if !category.Valid() {
		return Key{}, fmt.Errorf("unknown round category %q", category)
	}
	if !kind.Known() {
		return Key{}, fmt.Errorf("unknown round %q", kind)
	}
	if teams < 0 || teams > MaxTeams {
		return Key{}, fmt.Errorf("number of teams must be between 0 and %d, got %d", MaxTeams, teams)
	}
	return Key{Category: category, Kind: kind, Teams: teams}, nil
}

func (k Key) String() string {
	return fmt.Sprintf("%s %d %s", k.Kind, k.Teams, k.Category)
}
