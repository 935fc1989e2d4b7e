// Package model defines the recruiting tracker's entity types.
package model

// Division is a collegiate athletics division.
type Division string

const (
	DivisionNCAAD1 Division = "NCAA DI"
	DivisionNCAAD2 Division = "NCAA DII"
	DivisionNCAAD3 Division = "NCAA DIII"
	DivisionNAIA   Division = "NAIA"
	DivisionJuCo   Division = "Junior College"
)

// Divisions lists the allowed divisions in display order.
var Divisions = []Division{
	DivisionNCAAD1,
	DivisionNCAAD2,
	DivisionNCAAD3,
	DivisionNAIA,
	DivisionJuCo,
}

// ValidDivisions are the allowed school divisions.
var ValidDivisions = map[Division]bool{
	DivisionNCAAD1: true,
	DivisionNCAAD2: true,
	DivisionNCAAD3: true,
	DivisionNAIA:   true,
	DivisionJuCo:   true,
}

// ParseDivision returns the matching division, or the first division when s
// is not one of them.
func ParseDivision(s string) Division {
	d := Division(s)
	if ValidDivisions[d] {
		return d
	}
	return DivisionNCAAD1
}

// Achievement is a single line on the athlete's profile.
type Achievement struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// Profile is the athlete profile. There is exactly one per tracker.
type Profile struct {
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	Position     string        `json:"position"`
	Height       string        `json:"height"`
	Weight       string        `json:"weight"`
	GPA          string        `json:"gpa"`
	TestScores   string        `json:"testScores"`
	Achievements []Achievement `json:"achievements"`
}

// ProfileFields are the JSON names of the scalar profile fields, in form order.
var ProfileFields = []string{
	"name", "email", "phone", "position", "height", "weight", "gpa", "testScores",
}

// Field returns a pointer to the named scalar field, or nil when name is not
// a profile field.
func (p *Profile) Field(name string) *string {
	switch name {
	case "name":
		return &p.Name
	case "email":
		return &p.Email
	case "phone":
		return &p.Phone
	case "position":
		return &p.Position
	case "height":
		return &p.Height
	case "weight":
		return &p.Weight
	case "gpa":
		return &p.GPA
	case "testScores":
		return &p.TestScores
	}
	return nil
}

// Clone returns a deep copy.
func (p Profile) Clone() Profile {
	c := p
	c.Achievements = append([]Achievement(nil), p.Achievements...)
	return c
}

// School is a program on the athlete's target list.
type School struct {
	ID       int64    `json:"id" validate:"required,min=1,max=9007199254740991"`
	Name     string   `json:"name" validate:"required"`
	Division Division `json:"division" validate:"required,oneof='NCAA DI' 'NCAA DII' 'NCAA DIII' 'NAIA' 'Junior College'"`
	Contact  string   `json:"contact"`
	FitScore int      `json:"fitScore" validate:"min=0,max=100"`
}

// Outreach is one logged contact with a school.
type Outreach struct {
	ID       int64  `json:"id" validate:"required,min=1,max=9007199254740991"`
	SchoolID int64  `json:"schoolId" validate:"required,min=1,max=9007199254740991"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Message  string `json:"message" validate:"required"`
}

// Sender identifies who wrote a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ChatMessage is one entry in the assistant conversation log.
type ChatMessage struct {
	ID   int64  `json:"id" validate:"required,min=1,max=9007199254740991"`
	From Sender `json:"from" validate:"required,oneof=user bot"`
	Text string `json:"text"`
}

// Settings holds the free-text customization values.
type Settings struct {
	BrandName string `json:"brandName"`
	BotName   string `json:"botName"`
	ReelPlan  string `json:"reelPlan"`
}

// DefaultSettings are used for any setting that has no stored value.
var DefaultSettings = Settings{
	BrandName: "Recruit Tracker",
	BotName:   "Coach Bot",
	ReelPlan:  "",
}
