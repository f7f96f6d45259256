package card

// Suit is the suit of a card. The order of the constants matches the order of
// the suit blocks in the Unicode playing cards range.
type Suit int

const (
	SuitNone Suit = iota // jokers have no suit
	Spades
	Hearts
	Diamonds
	Clubs
)

// Suits lists the four suits in canonical order.
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

func (s Suit) Valid() bool { return s >= Spades && s <= Clubs }

// Color returns the color cards of this suit have.
func (s Suit) Color() Color {
	switch s {
	case Hearts, Diamonds:
		return Red
	case Spades, Clubs:
		return Black
	default:
		return ColorNone
	}
}

func (s Suit) String() string {
	switch s {
	case Spades:
		return "spades"
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	default:
		return "none"
	}
}

// Rank is the rank of a card. Its value is the card's slot within a suit
// block of the Unicode playing cards range, which is why Knight sits between
// Jack and Queen.
type Rank int

const (
	RankNone Rank = iota // jokers have no rank
	Ace
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Knight
	Queen
	King
)

// Ranks lists all fourteen ranks, knight included.
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Knight, Queen, King}

// StandardRanks lists the thirteen ranks of a standard deck.
var StandardRanks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

func (r Rank) Valid() bool { return r >= Ace && r <= King }

// Pips returns the number of pips for ace through ten and 0 otherwise.
func (r Rank) Pips() int {
	if r >= Ace && r <= Ten {
		return int(r)
	}
	return 0
}

// IsFace reports whether r is a court rank: jack, knight, queen or king.
func (r Rank) IsFace() bool { return r >= Jack && r <= King }

var rankNames = [...]string{
	RankNone: "none",
	Ace:      "ace",
	Two:      "two",
	Three:    "three",
	Four:     "four",
	Five:     "five",
	Six:      "six",
	Seven:    "seven",
	Eight:    "eight",
	Nine:     "nine",
	Ten:      "ten",
	Jack:     "jack",
	Knight:   "knight",
	Queen:    "queen",
	King:     "king",
}

func (r Rank) String() string {
	if r < RankNone || r > King {
		return "none"
	}
	return rankNames[r]
}

// Color is the color of a card's face.
type Color int

const (
	ColorNone Color = iota
	Red
	Black
)

// Colors lists the two card colors.
var Colors = []Color{Red, Black}

func (c Color) Valid() bool { return c == Red || c == Black }

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Black:
		return "black"
	default:
		return "none"
	}
}
