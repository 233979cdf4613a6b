package emailsvc

import (
	"bytes"
	"log"
	"net/mail"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/darasa/core"
	appfs "github.com/trezcool/darasa/fs"
	logsvc "github.com/trezcool/darasa/services/logger"
)

func testConfig() *core.Config {
	return &core.Config{
		AppName:         "Darasa",
		TestMode:        true,
		FromEmail:       "noreply@darasa.school",
		FrontendBaseURL: "http://localhost:8080",
	}
}

func coverRequest() *core.EmailMessage {
	return &core.EmailMessage{
		To:           []mail.Address{{Name: "Ms. Emily Johnson", Address: "emily.johnson@darasa.school"}},
		Cc:           []mail.Address{{Address: "office@darasa.school"}},
		Subject:      "Cover request",
		TemplateName: "cover_request",
		TemplateData: map[string]string{
			"CoverTeacher":  "Ms. Emily Johnson",
			"AbsentTeacher": "Mr. John Smith",
			"Date":          "2024-03-04",
			"Subject":       "Mathematics",
		},
	}
}

func TestConsoleService_sendMessage(t *testing.T) {
	conf := testConfig()
	core.ParseEmailTemplates(appfs.FS, appfs.EmailTemplatesDir, conf, logsvc.NewNopLogger())

	var out bytes.Buffer
	svc := &consoleService{
		from:       conf.DefaultFromEmail(),
		subjPrefix: "[Darasa] ",
		out:        log.New(&out, "", 0),
		logger:     logsvc.NewNopLogger(),
	}
	require.NoError(t, svc.sendMessage(coverRequest()))

	body := out.String()
	assert.Contains(t, body, `From: "Darasa" <noreply@darasa.school>`)
	assert.Contains(t, body, "Subject: [Darasa] Cover request\r\n")
	assert.Contains(t, body, `To: "Ms. Emily Johnson" <emily.johnson@darasa.school>`)
	assert.Contains(t, body, "CC: <office@darasa.school>")
	assert.Contains(t, body, "Content-Type: multipart/alternative; boundary=")
	assert.Contains(t, body, "text/plain; charset=utf-8")
	assert.Contains(t, body, "text/html; charset=utf-8")
	assert.Contains(t, body, "Mr. John Smith is absent on 2024-03-04")
}

func TestConsoleServiceMock(t *testing.T) {
	conf := testConfig()
	core.ParseEmailTemplates(appfs.FS, appfs.EmailTemplatesDir, conf, logsvc.NewNopLogger())
	svc := NewConsoleServiceMock(conf, logsvc.NewNopLogger())

	noRecipient := coverRequest()
	noRecipient.To = nil
	unknownTmpl := coverRequest()
	unknownTmpl.TemplateName = "nope"
	plain := &core.EmailMessage{To: []mail.Address{{Address: "a@darasa.school"}}, Subject: "Hi", BodyStr: "Hello"}

	svc.SendMessages(coverRequest(), noRecipient, unknownTmpl, plain)

	sent := svc.SentMessages()
	require.Len(t, sent, 2)
	assert.Contains(t, sent[0].TextContent, "Hello Ms. Emily Johnson")
	assert.Equal(t, "Hello", sent[1].TextContent)
	assert.Empty(t, sent[1].HTMLContent)

	svc.Reset()
	assert.Empty(t, svc.SentMessages())
}

func TestJoinAddresses(t *testing.T) {
	got := joinAddresses([]mail.Address{{Name: "A", Address: "a@x.io"}, {Address: "b@x.io"}})
	assert.Equal(t, `"A" <a@x.io>, <b@x.io>`, got)
}
