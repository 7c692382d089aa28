package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/semafind/distcalc/distance"
	"github.com/semafind/distcalc/pointio"
)

type SessionConfig struct {
	// Repeat the whole interaction until the user enters the quit token
	Loop bool `yaml:"loop"`
	// Case insensitive answer that ends a looping session, "quit" always works
	QuitToken string `yaml:"quitToken"`
	// Clear the terminal before every round
	ClearScreen bool `yaml:"clearScreen"`
}

const (
	banner       = "Program calculates distance between 2 points on a 2D coordinate."
	firstPrompt  = "Enter a point in the form (x, y): "
	secondPrompt = "Enter a second point in the form (x, y): "
	exitPrompt   = "Enter to quit the program: "
	farewell     = "Good bye..."
	// ANSI cursor home followed by erase display
	clearSequence = "\033[H\033[2J"
)

// Session drives the console dialogue around a distance function.
type Session struct {
	cfg     SessionConfig
	distFn  distance.DistFunc
	scanner *bufio.Scanner
	out     io.Writer
}

func NewSession(cfg SessionConfig, distFn distance.DistFunc, in io.Reader, out io.Writer) *Session {
	if cfg.QuitToken == "" {
		cfg.QuitToken = "q"
	}
	return &Session{
		cfg:     cfg,
		distFn:  distFn,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Run reads pairs of points and prints their distance until the user quits or
// the input ends. Running out of input is not an error.
func (s *Session) Run(ctx context.Context) error {
	for round := 1; ; round++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		done, err := s.round(round)
		if errors.Is(err, io.EOF) {
			log.Debug().Int("round", round).Msg("input closed")
			break
		}
		if err != nil {
			return err
		}
		if done {
			break
		}
	}
	fmt.Fprintln(s.out, farewell)
	return nil
}

// round performs one complete interaction and reports whether the session
// should end afterwards.
func (s *Session) round(round int) (bool, error) {
	if s.cfg.ClearScreen {
		fmt.Fprint(s.out, clearSequence)
	}
	fmt.Fprintln(s.out, banner)
	first, err := s.readPoint(firstPrompt)
	if err != nil {
		return true, err
	}
	fmt.Fprintln(s.out, pointio.FormatPoint("1", first))
	second, err := s.readPoint(secondPrompt)
	if err != nil {
		return true, err
	}
	fmt.Fprintln(s.out, pointio.FormatPoint("2", second))
	// ---------------------------
	dist := s.distFn(first.X, first.Y, second.X, second.Y)
	log.Debug().Int("round", round).Interface("first", first).Interface("second", second).Float64("distance", dist).Msg("Session.round")
	fmt.Fprintln(s.out, pointio.FormatDistance(dist))
	// ---------------------------
	if !s.cfg.Loop {
		fmt.Fprint(s.out, exitPrompt)
		_, err := s.readLine()
		if err != nil && !errors.Is(err, io.EOF) {
			return true, err
		}
		return true, nil
	}
	fmt.Fprintf(s.out, "Enter %s to quit or press Enter to continue: ", s.cfg.QuitToken)
	answer, err := s.readLine()
	if err != nil {
		return true, err
	}
	return s.isQuit(answer), nil
}

func (s *Session) isQuit(answer string) bool {
	answer = strings.TrimSpace(answer)
	return strings.EqualFold(answer, s.cfg.QuitToken) || strings.EqualFold(answer, "quit")
}

// readPoint prompts until a well formed point is entered.
func (s *Session) readPoint(prompt string) (distance.Point, error) {
	for {
		fmt.Fprint(s.out, prompt)
		line, err := s.readLine()
		if err != nil {
			return distance.Point{}, err
		}
		p, err := pointio.ParsePoint(line)
		if err == nil {
			return p, nil
		}
		log.Debug().Err(err).Str("input", line).Msg("rejected point")
		fmt.Fprintf(s.out, "invalid point %q: %v\n", strings.TrimSpace(line), err)
	}
}

func (s *Session) readLine() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", fmt.Errorf("could not read input: %w", err)
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}
