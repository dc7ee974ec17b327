package defs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedToken is returned for a spawn-script token that is neither a
// spawn ({A|B}{s|l}{0-9}) nor a wait (w{0-9}).
var ErrMalformedToken = errors.New("malformed spawn token")

// TokenKind distinguishes wait tokens from spawn tokens.
type TokenKind int

const (
	TokenSpawn TokenKind = iota
	TokenWait
)

// Token is one parsed sub-token of a spawn-script group.
type Token struct {
	Kind     TokenKind
	Sector   byte      // 'A' or 'B', spawn only
	Enemy    EnemyType // spawn only
	Count    int       // spawn only
	Measures int       // wait only
}

func (t Token) String() string {
	if t.Kind == TokenWait {
		return fmt.Sprintf("w%d", t.Measures)
	}
	return fmt.Sprintf("%c%c%d", t.Sector, t.Enemy, t.Count)
}

// Group is one ';'-separated instruction group, consumed on a single measure.
type Group []Token

// WaveScript is the parsed spawn script of one wave.
type WaveScript struct {
	Source string
	Groups []Group
}

// TotalSpawns counts enemies the script will spawn.
func (w WaveScript) TotalSpawns() int {
	total := 0
	for _, g := range w.Groups {
		for _, t := range g {
			if t.Kind == TokenSpawn {
				total += t.Count
			}
		}
	}
	return total
}

// ScriptError locates a malformed token inside a level's wave list.
type ScriptError struct {
	Wave  int
	Group int
	Token string
	Err   error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("wave %d, group %d: token %q: %v", e.Wave+1, e.Group+1, e.Token, e.Err)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}

// ParseWave parses one wave line, e.g. "As3;w2;Al1,Bs2".
// Empty groups and empty sub-tokens are skipped.
func ParseWave(line string) (WaveScript, error) {
	script := WaveScript{Source: line}
	for gi, rawGroup := range strings.Split(line, ";") {
		var group Group
		for _, rawToken := range strings.Split(rawGroup, ",") {
			rawToken = strings.TrimSpace(rawToken)
			if rawToken == "" {
				continue
			}
			tok, err := parseToken(rawToken)
			if err != nil {
				return WaveScript{}, &ScriptError{Group: gi, Token: rawToken, Err: err}
			}
			group = append(group, tok)
		}
		if len(group) > 0 {
			script.Groups = append(script.Groups, group)
		}
	}
	return script, nil
}

// ParseWaves parses every wave line of a level, failing on the first bad token.
func ParseWaves(lines []string) ([]WaveScript, error) {
	scripts := make([]WaveScript, 0, len(lines))
	for i, line := range lines {
		script, err := ParseWave(line)
		if err != nil {
			var se *ScriptError
			if errors.As(err, &se) {
				se.Wave = i
			}
			return nil, err
		}
		scripts = append(scripts, script)
	}
	return scripts, nil
}

func parseToken(raw string) (Token, error) {
	if len(raw) == 2 && raw[0] == 'w' {
		n, ok := digit(raw[1])
		if !ok {
			return Token{}, ErrMalformedToken
		}
		return Token{Kind: TokenWait, Measures: n}, nil
	}
	if len(raw) != 3 {
		return Token{}, ErrMalformedToken
	}
	sector, enemy := raw[0], EnemyType(raw[1])
	if sector != 'A' && sector != 'B' {
		return Token{}, ErrMalformedToken
	}
	if enemy != EnemySmall && enemy != EnemyLarge {
		return Token{}, ErrMalformedToken
	}
	n, ok := digit(raw[2])
	if !ok {
		return Token{}, ErrMalformedToken
	}
	return Token{Kind: TokenSpawn, Sector: sector, Enemy: enemy, Count: n}, nil
}

func digit(c byte) (int, bool) {
	if c < '0' || c > '9' {
		return 0, false
	}
	return int(c - '0'), true
}
