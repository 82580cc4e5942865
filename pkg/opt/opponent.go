package opt

import (
	"strconv"
	"strings"

	"github.com/uzichess/uzi/pkg/uci"
)

// Title is the FIDE title carried in a UCI_Opponent value, or NoTitle when
// the GUI sent "none".
type Title uint8

const (
	NoTitle Title = iota
	GM
	IM
	FM
	WGM
	WIM
)

var titleNames = map[Title]string{
	NoTitle: "none",
	GM:      "GM",
	IM:      "IM",
	FM:      "FM",
	WGM:     "WGM",
	WIM:     "WIM",
}

func (t Title) String() string {
	if s, ok := titleNames[t]; ok {
		return s
	}
	return "none"
}

func parseTitle(tok string) (Title, bool) {
	for t, name := range titleNames {
		if tok == name {
			return t, true
		}
	}
	return NoTitle, false
}

// PlayerType says whether the opponent is an engine or a person.
type PlayerType uint8

const (
	Computer PlayerType = iota
	Human
)

func (p PlayerType) String() string {
	if p == Human {
		return "human"
	}
	return "computer"
}

// Opponent is the conventional value of the UCI_Opponent option:
//
//	[GM|IM|FM|WGM|WIM|none] [<elo>|none] [computer|human] <name>
//
// Elo is nil when the GUI sent "none".
type Opponent struct {
	Title Title
	Elo   *int
	Type  PlayerType
	Name  string
}

// ParseOpponent decodes a UCI_Opponent value.
func ParseOpponent(value string) (Opponent, error) {
	fields := strings.Fields(value)
	if len(fields) < 4 {
		return Opponent{}, &uci.Error{Kind: uci.BadOpponent, Raw: value}
	}
	title, ok := parseTitle(fields[0])
	if !ok {
		return Opponent{}, &uci.Error{Kind: uci.BadTitle, Raw: fields[0]}
	}
	o := Opponent{Title: title}
	if fields[1] != "none" {
		elo, err := strconv.Atoi(fields[1])
		if err != nil {
			return Opponent{}, &uci.Error{Kind: uci.BadNumber, Field: "elo", Raw: fields[1]}
		}
		o.Elo = &elo
	}
	switch fields[2] {
	case "computer":
		o.Type = Computer
	case "human":
		o.Type = Human
	default:
		return Opponent{}, &uci.Error{Kind: uci.BadPlayerType, Raw: fields[2]}
	}
	o.Name = strings.Join(fields[3:], " ")
	return o, nil
}

func (o Opponent) String() string {
	var sb strings.Builder
	sb.WriteString(o.Title.String())
	sb.WriteByte(' ')
	if o.Elo != nil {
		sb.WriteString(strconv.Itoa(*o.Elo))
	} else {
		sb.WriteString("none")
	}
	sb.WriteByte(' ')
	sb.WriteString(o.Type.String())
	sb.WriteByte(' ')
	sb.WriteString(o.Name)
	return sb.String()
}
