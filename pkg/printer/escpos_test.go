package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentInit(t *testing.T) {
	d := NewDocument(32)
	assert.Equal(t, []byte{ESC, '@'}, d.Bytes())
}

func TestDocumentDefaultWidth(t *testing.T) {
	d := NewDocument(0)
	d.Separator('-')
	line := d.Bytes()[2:] // skip ESC @
	assert.Len(t, line, 33) // 32 dashes plus line feed
}

func TestDocumentKeyValueAlignment(t *testing.T) {
	d := NewDocument(32)
	d.KeyValue("Total", "$10.00")
	line := string(d.Bytes()[2:])
	assert.Len(t, line, 33)
	assert.Equal(t, "Total", line[:5])
	assert.Equal(t, "$10.00\n", line[26:])
}

func TestDocumentKeyValueOverflow(t *testing.T) {
	d := NewDocument(10)
	d.KeyValue("A very long key", "$1.00")
	line := string(d.Bytes()[2:])
	// key plus value exceed the width, keep a single space between them
	assert.Equal(t, "A very long key $1.00\n", line)
}

func TestDocumentItemLine(t *testing.T) {
	d := NewDocument(32)
	d.ItemLine(2, "Widget", "$20.00")
	line := string(d.Bytes()[2:])
	assert.Len(t, line, 33)
	assert.Equal(t, "2x Widget", line[:9])
	assert.Equal(t, "$20.00\n", line[26:])
}

func TestDocumentCommands(t *testing.T) {
	d := NewDocument(32)
	d.SetAlign(AlignCenter).SetBold(true).SetFontSize(FontDouble).Text("HELLO").SetBold(false).Cut()

	want := []byte{ESC, '@'}
	want = append(want, ESC, 'a', 1)
	want = append(want, ESC, 'E', 1)
	want = append(want, GS, '!', FontDouble)
	want = append(want, []byte("HELLO\n")...)
	want = append(want, ESC, 'E', 0)
	want = append(want, GS, 'V', 0)
	assert.Equal(t, want, d.Bytes())
}

func TestDocumentReset(t *testing.T) {
	d := NewDocument(32)
	d.Text("something")
	d.Reset()
	assert.Equal(t, []byte{ESC, '@'}, d.Bytes())
}

func TestNewPrinterFromConfig(t *testing.T) {
	p, err := NewPrinterFromConfig("none", "", "")
	assert.NoError(t, err)
	assert.False(t, p.IsConnected())
	assert.NoError(t, p.Print([]byte("data")))
	assert.NoError(t, p.Close())

	_, err = NewPrinterFromConfig("usb", "", "")
	assert.Error(t, err)

	_, err = NewPrinterFromConfig("network", "", "")
	assert.Error(t, err)

	_, err = NewPrinterFromConfig("serial", "", "")
	assert.Error(t, err)
}
