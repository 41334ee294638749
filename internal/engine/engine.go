package engine

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-profile/internal/config"
	"github.com/tartampluch/go-profile/internal/datesel"
)

// SyncConfig describes where the staff directory comes from.
type SyncConfig struct {
	Mode      string // config.SourceModeLocal or config.SourceModeWeb
	LocalPath string // Path to the .vcf file
	WebURL    string // CardDAV or WebDAV URL
	WebUser   string // HTTP Basic Auth Username
	WebPass   string // HTTP Basic Auth Password
}

// Importer reads a vCard directory into staff profiles.
type Importer struct {
	Fetcher DirectoryFetcher
}

// Import opens the configured source and decodes every card.
// Malformed cards are skipped; an unreadable source is an error.
func (im *Importer) Import(ctx context.Context, cfg SyncConfig) ([]StaffEntry, error) {
	start := time.Now()
	log := slog.With(
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyMode, cfg.Mode,
	)
	log.InfoContext(ctx, config.MsgSyncStarted)

	reader, err := im.open(ctx, cfg)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%s: %w", config.ErrVCardOpen, err)
	}
	defer func() { _ = reader.Close() }()

	entries, err := decodeDirectory(ctx, reader)
	if err != nil {
		return nil, err
	}

	log.Info(config.MsgImportDone,
		config.LogKeyImported, len(entries),
		config.LogKeyDuration, time.Since(start).Milliseconds())
	return entries, nil
}

func (im *Importer) open(ctx context.Context, cfg SyncConfig) (io.ReadCloser, error) {
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

func decodeDirectory(ctx context.Context, r io.Reader) ([]StaffEntry, error) {
	decoder := vcard.NewDecoder(r)
	processed := 0
	var entries []StaffEntry

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyError, err)
			continue
		}
		processed++
		entries = append(entries, entryFromCard(card))
	}

	slog.Debug(config.MsgImportDone,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyTotal, processed)
	return entries, nil
}

// entryFromCard maps one vCard onto a profile. FN wins over N.
func entryFromCard(card vcard.Card) StaffEntry {
	e := StaffEntry{
		Email: card.PreferredValue(config.VCardEmail),
		Phone: card.PreferredValue(config.VCardTel),
		Title: card.Value(config.VCardTitle),
	}

	if fn := card.Get(config.VCardFN); fn != nil {
		e.Name = fn.Value
	} else if n := card.Get(config.VCardN); n != nil {
		e.Name = n.Value
	}

	if bday := card.Get(config.VCardBDAY); bday != nil && bday.Value != "" {
		if canonical, err := canonicalBirthDate(bday.Value); err == nil {
			e.BirthDate = canonical
		} else {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyValue, bday.Value)
		}
	}

	e.UID = card.Value(config.VCardUID)
	if e.UID == "" {
		input := fmt.Sprintf(config.FormatHashInput, e.Name, e.BirthDate, config.UIDSalt)
		hash := sha256.Sum256([]byte(input))
		e.UID = fmt.Sprintf("%x", hash[:config.UIDHashLength])
	}
	return e
}

// canonicalBirthDate converts a vCard BDAY value to "DD.MM.YYYY".
// Dates without a year ("--MM-DD") keep an empty year segment.
func canonicalBirthDate(value string) (string, error) {
	formatsWithYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}
	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return datesel.Format(partsOf(t, strconv.Itoa(t.Year()))), nil
		}
	}

	for _, f := range []string{config.DateFormatNoYearD, config.DateFormatNoYearB} {
		if t, err := time.Parse(f, value); err == nil {
			return datesel.Format(partsOf(t, "")), nil
		}
	}

	return "", errors.New(config.ErrDateParse)
}

func partsOf(t time.Time, year string) datesel.DateParts {
	return datesel.DateParts{
		Day:   datesel.At(t.Day() - 1),
		Month: datesel.At(int(t.Month()) - 1),
		Year:  year,
	}
}
