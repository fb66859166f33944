// Package mailsource loads the email being replied to from .eml and mbox
// files and reduces it to the plain text sent for generation.
package mailsource

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"os"
	"path/filepath"
	"strings"

	"github.com/emersion/go-mbox"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	perrors "github.com/zhubert/replywriter/internal/errors"
	"github.com/zhubert/replywriter/internal/logger"
)

// Message is the readable part of an email.
type Message struct {
	From     string
	Subject  string
	Body     string
	BodyType string // "text/plain" or "text/html"
}

// Text renders the message as the composer content: From and Subject lines,
// a blank line, then the body.
func (m *Message) Text() string {
	var b strings.Builder
	if m.From != "" {
		fmt.Fprintf(&b, "From: %s\n", m.From)
	}
	if m.Subject != "" {
		fmt.Fprintf(&b, "Subject: %s\n", m.Subject)
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(strings.TrimRight(normalizeNewlines(m.Body), "\n"))
	return b.String()
}

// IsMbox reports whether path names an mbox file by its extension.
func IsMbox(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".mbox" || ext == ".mbx"
}

// Load picks LoadMbox or LoadEML by extension. index is ignored for .eml
// files. A leading "~/" is expanded to the home directory.
func Load(path string, index int) (*Message, error) {
	path = ExpandHome(path)
	if IsMbox(path) {
		return LoadMbox(path, index)
	}
	return LoadEML(path)
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// LoadEML parses a single RFC 5322 message file.
func LoadEML(path string) (*Message, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, perrors.E(perrors.Op("mailsource.LoadEML"), perrors.KindIO, err)
	}
	defer f.Close()

	msg, err := Parse(f)
	if err != nil {
		return nil, perrors.E(perrors.Op("mailsource.LoadEML"), perrors.KindInvalid, path, err)
	}
	return msg, nil
}

// LoadMbox parses the index'th (zero-based) message of an mbox file.
func LoadMbox(path string, index int) (*Message, error) {
	if index < 0 {
		return nil, perrors.MailNotFound(path, index)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, perrors.E(perrors.Op("mailsource.LoadMbox"), perrors.KindIO, err)
	}
	defer f.Close()

	reader := mbox.NewReader(f)
	for i := 0; ; i++ {
		r, err := reader.NextMessage()
		if errors.Is(err, io.EOF) {
			return nil, perrors.MailNotFound(path, index)
		}
		if err != nil {
			return nil, perrors.E(perrors.Op("mailsource.LoadMbox"), perrors.KindInvalid, path, err)
		}
		if i != index {
			continue
		}

		msg, err := Parse(r)
		if err != nil {
			return nil, perrors.E(perrors.Op("mailsource.LoadMbox"), perrors.KindInvalid,
				fmt.Sprintf("message %d in %s", index, path), err)
		}
		return msg, nil
	}
}

// Count returns the number of messages in an mbox file.
func Count(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, perrors.E(perrors.Op("mailsource.Count"), perrors.KindIO, err)
	}
	defer f.Close()

	reader := mbox.NewReader(f)
	n := 0
	for {
		_, err := reader.NextMessage()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, perrors.E(perrors.Op("mailsource.Count"), perrors.KindInvalid, path, err)
		}
		n++
	}
}

// Parse reads one message. Headers are decoded from RFC 2047 encoded-words;
// the body is the first text/plain part, or the first text/html part when
// there is no plain text.
func Parse(r io.Reader) (*Message, error) {
	m, err := mail.ReadMessage(r)
	if err != nil {
		return nil, fmt.Errorf("read message: %w", err)
	}

	decoder := &mime.WordDecoder{CharsetReader: charsetReader}
	out := &Message{
		From:    decodeAddressList(m.Header.Get("From"), decoder),
		Subject: decodeHeader(m.Header.Get("Subject"), decoder),
	}

	var plain, html string
	walk(m.Header, m.Body, func(ctype, text string) {
		switch {
		case ctype == "text/plain" && plain == "":
			plain = text
		case ctype == "text/html" && html == "":
			html = text
		}
	})

	switch {
	case plain != "":
		out.Body, out.BodyType = plain, "text/plain"
	case html != "":
		out.Body, out.BodyType = html, "text/html"
	default:
		out.BodyType = "text/plain"
	}
	return out, nil
}

type header interface{ Get(string) string }

// walk visits every non-attachment text leaf of the MIME tree.
func walk(h header, body io.Reader, visit func(ctype, text string)) {
	ctype, params, err := mime.ParseMediaType(h.Get("Content-Type"))
	if err != nil {
		ctype = "text/plain"
		params = map[string]string{}
	}

	if strings.HasPrefix(ctype, "multipart/") {
		mr := multipart.NewReader(body, params["boundary"])
		for {
			p, err := mr.NextPart()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				logger.Debug("MailSource: Error reading multipart body: %v", err)
				return
			}
			walk(p.Header, p, visit)
		}
	}

	if disp, _, err := mime.ParseMediaType(h.Get("Content-Disposition")); err == nil && disp == "attachment" {
		return
	}
	if ctype != "text/plain" && ctype != "text/html" {
		return
	}

	raw, err := io.ReadAll(transferDecoder(h.Get("Content-Transfer-Encoding"), body))
	if err != nil {
		logger.Debug("MailSource: Error decoding %s part: %v", ctype, err)
		return
	}
	visit(ctype, decodeCharset(params["charset"], raw))
}

func transferDecoder(cte string, body io.Reader) io.Reader {
	switch strings.ToLower(strings.TrimSpace(cte)) {
	case "base64":
		// The decoder skips the CR and LF of wrapped lines.
		return base64.NewDecoder(base64.StdEncoding, body)
	case "quoted-printable":
		return quotedprintable.NewReader(body)
	default:
		// 7bit, 8bit, binary -> no wrapper
		return body
	}
}

func decodeCharset(charset string, raw []byte) string {
	if charset == "" || strings.EqualFold(charset, "utf-8") || strings.EqualFold(charset, "us-ascii") {
		return string(raw)
	}
	enc, err := ianaindex.IANA.Encoding(strings.ToLower(charset))
	if err != nil || enc == nil {
		logger.Debug("MailSource: Unknown charset %q, using raw bytes", charset)
		return string(raw)
	}
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}

func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	if charset == "" {
		return input, nil
	}
	enc, err := ianaindex.IANA.Encoding(strings.ToLower(charset))
	if err != nil || enc == nil {
		return input, nil
	}
	return transform.NewReader(input, enc.NewDecoder()), nil
}

func decodeHeader(v string, decoder *mime.WordDecoder) string {
	if v == "" {
		return ""
	}
	if dec, err := decoder.DecodeHeader(v); err == nil {
		return dec
	}
	return v
}

func decodeAddressList(v string, decoder *mime.WordDecoder) string {
	if v == "" {
		return ""
	}
	parser := mail.AddressParser{WordDecoder: decoder}
	addrs, err := parser.ParseList(v)
	if err != nil {
		return decodeHeader(v, decoder)
	}
	parts := make([]string, 0, len(addrs))
	for _, a := range addrs {
		if a.Name != "" {
			parts = append(parts, a.Name+" <"+a.Address+">")
		} else {
			parts = append(parts, a.Address)
		}
	}
	return strings.Join(parts, ", ")
}

func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	return strings.ReplaceAll(s, "\r\n", "\n")
}
