package player

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"gotcha/engine"

	"github.com/rs/zerolog/log"
)

// Script replays commands read from a file, one per line. Blank lines and
// lines starting with '#' are skipped. When the script runs out, the match
// ends with io.EOF.
type Script struct {
	lines      []string
	next       int
	rejections []error
}

func NewScript(r io.Reader) (*Script, error) {
	s := &Script{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s.lines = append(s.lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading script: %w", err)
	}
	return s, nil
}

func (s *Script) Next(ctx context.Context, m *engine.Match) (engine.Command, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.next >= len(s.lines) {
		return nil, io.EOF
	}
	line := s.lines[s.next]
	s.next++

	cmd, err := ParseCommand(line, m.State.ActivePlayerIndex())
	if err != nil {
		return nil, fmt.Errorf("script line %q: %w", line, err)
	}
	return cmd, nil
}

func (s *Script) Rejected(cmd engine.Command, err error) {
	log.Warn().Err(err).Stringer("command", cmd).Int("line", s.next).Msg("script command rejected")
	s.rejections = append(s.rejections, err)
}

// Rejections returns the errors of every refused command so far.
func (s *Script) Rejections() []error {
	return s.rejections
}

// Remaining is the number of commands not yet played.
func (s *Script) Remaining() int {
	return len(s.lines) - s.next
}
