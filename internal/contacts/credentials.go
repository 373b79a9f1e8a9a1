package contacts

import (
	"fmt"
	"log/slog"

	"github.com/zalando/go-keyring"

	"github.com/dmathew/go-giftsmart/internal/config"
)

// Password looks up the web-mode basic-auth password for user in the system
// keyring. An absent secret is not an error: web shares without auth are
// common, so the importer proceeds with an empty password.
func Password(user string) string {
	if user == "" {
		return ""
	}
	secret, err := keyring.Get(config.KeyringService, user)
	if err != nil {
		slog.Debug(config.MsgPassFail,
			config.LogKeyComponent, config.CompContacts,
			config.LogKeyError, err,
		)
		return ""
	}
	return secret
}

// StorePassword saves the web-mode password for user in the system keyring.
func StorePassword(user, pass string) error {
	if err := keyring.Set(config.KeyringService, user, pass); err != nil {
		return fmt.Errorf("%s: %w", config.ErrKeyringSet, err)
	}
	return nil
}
