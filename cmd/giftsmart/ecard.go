package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmathew/go-giftsmart/internal/config"
	"github.com/dmathew/go-giftsmart/internal/gifts"
	"github.com/dmathew/go-giftsmart/internal/greet"
	"github.com/dmathew/go-giftsmart/internal/store"
)

// runECard composes the e-card for one stored entry and appends the popular
// gift options as suggestions. Output goes to out; the caller exits after.
func runECard(ctx context.Context, st *store.Store, translator *greet.Translator, svc *gifts.Service, id string, out io.Writer) error {
	var entry store.Entry
	found := false
	for _, e := range st.Entries() {
		if e.ID == id {
			entry = e
			found = true
			break
		}
	}
	if !found {
		return errors.New(config.ErrEntryNotFound)
	}

	composer := &greet.Composer{T: translator}
	fmt.Fprintln(out, composer.MessageFor(entry))

	options, err := svc.AllOptions(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, config.ECardGiftHeader)
	for _, o := range options {
		if o.Popular {
			fmt.Fprintf(out, config.FormatGiftIdea, o.BrandName, o.PriceRange())
		}
	}
	return nil
}
