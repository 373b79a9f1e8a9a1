// Package contacts turns vCard sources (local files or CardDAV shares) into
// birthday candidates for the store. Malformed cards and unparseable dates
// are skipped, never fatal: the importer recovers as much data as it can.
package contacts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/emersion/go-vcard"

	"github.com/dmathew/go-giftsmart/internal/config"
)

// SourceConfig contains all parameters required to read a contact source.
type SourceConfig struct {
	Mode      string // config.SourceModeLocal or config.SourceModeWeb
	LocalPath string // Absolute path to the .vcf file
	WebURL    string // CardDAV or WebDAV URL
	WebUser   string // HTTP Basic Auth Username
	WebPass   string // HTTP Basic Auth Password
}

// Importer reads a vCard source and extracts birthday candidates.
type Importer struct {
	Fetcher Fetcher // Network abstraction; nil is fine for local mode.
}

// Run opens the configured source and parses it into candidates.
// Only cards with a parseable BDAY survive; everything else is logged and
// dropped.
func (im *Importer) Run(ctx context.Context, cfg SourceConfig) ([]Candidate, error) {
	start := time.Now()
	log := slog.With(
		config.LogKeyComponent, config.CompContacts,
		config.LogKeyMode, cfg.Mode,
	)
	log.InfoContext(ctx, config.MsgImportStarted)

	reader, err := im.open(ctx, cfg)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
	}
	// Best effort close. Errors closing a read-only stream are rarely actionable.
	defer func() { _ = reader.Close() }()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	candidates, err := decode(ctx, reader)
	if err != nil {
		return nil, err
	}

	log.Info(config.MsgImportSuccess,
		config.LogKeyCount, len(candidates),
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
	return candidates, nil
}

// open yields a stream for the configured source mode.
func (im *Importer) open(ctx context.Context, cfg SourceConfig) (io.ReadCloser, error) {
	switch cfg.Mode {
	case config.SourceModeLocal:
		if cfg.LocalPath == "" {
			return nil, errors.New(config.ErrLocalPathEmpty)
		}
		return os.Open(cfg.LocalPath)
	case config.SourceModeWeb:
		if cfg.WebURL == "" {
			return nil, errors.New(config.ErrWebURLEmpty)
		}
		if im.Fetcher == nil {
			return nil, errors.New(config.ErrFetcherMissing)
		}
		return im.Fetcher.Fetch(ctx, cfg.WebURL, cfg.WebUser, cfg.WebPass)
	default:
		return nil, fmt.Errorf("%s: %q", config.ErrModeUnsupport, cfg.Mode)
	}
}

// decode walks the vCard stream card by card.
func decode(ctx context.Context, r io.Reader) ([]Candidate, error) {
	dec := vcard.NewDecoder(r)
	var candidates []Candidate

	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Continue to the next card to maximize data recovery.
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompContacts,
				config.LogKeyError, err,
			)
			continue
		}

		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		birthDate, yearKnown, err := parseDate(bday.Value)
		if err != nil {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompContacts,
				config.LogKeyValue, bday.Value,
			)
			continue
		}

		// Name Strategy: FN (Formatted) > N (Structured) > Fallback
		name := config.FallbackName
		if fn := card.Get(config.VCardFN); fn != nil && fn.Value != "" {
			name = fn.Value
		} else if n := card.Get(config.VCardN); n != nil && n.Value != "" {
			name = n.Value
		}

		phone := ""
		if tel := card.Get(config.VCardTEL); tel != nil {
			phone = tel.Value
		}

		candidates = append(candidates, Candidate{
			Name:      name,
			Birthday:  birthDate,
			YearKnown: yearKnown,
			Phone:     phone,
		})
	}

	return candidates, nil
}

// parseDate handles the vCard BDAY formats encountered in the wild.
func parseDate(value string) (time.Time, bool, error) {
	// Full dates (Year known)
	formatsWithYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}
	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return t, true, nil
		}
	}

	// Truncated dates (Year unknown) - vCard specific.
	// The stand-in year is a leap year so --02-29 stays representable.
	formatsWithoutYear := []string{config.DateFormatNoYearD, config.DateFormatNoYearB}
	for _, f := range formatsWithoutYear {
		if t, err := time.Parse(f, value); err == nil {
			safeDate := time.Date(config.DefaultLeapYear, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return safeDate, false, nil
		}
	}

	return time.Time{}, false, errors.New(config.ErrDateParse)
}
