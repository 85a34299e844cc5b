package chat

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/wassat/website/internal/i18n"
)

//go:embed messages/active.*.toml
var messageFS embed.FS

// Message ids of the chat status copy.
const (
	MsgThinking    = "ChatThinking"
	MsgNoResponse  = "ChatNoResponse"
	MsgUnavailable = "ChatUnavailable"
	MsgGreeting    = "ChatGreeting"
)

// Messages localizes the chat status copy.
type Messages struct {
	bundle *goi18n.Bundle
}

// LoadMessages reads the embedded message files.
func LoadMessages() (*Messages, error) {
	bundle := goi18n.NewBundle(language.German)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(messageFS, "messages/active.*.toml")
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(messageFS, file); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path.Base(file), err)
		}
	}
	return &Messages{bundle: bundle}, nil
}

// Text returns the message for lang, falling back to German and finally
// to the id itself.
func (m *Messages) Text(lang i18n.Language, id string) string {
	localizer := goi18n.NewLocalizer(m.bundle, string(lang), string(i18n.Default))
	msg, err := localizer.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}
