// Package reversal holds the smallest possible adapter: a Target contract, an
// Adaptee whose output has the wrong shape and an Adapter that translates it.
package reversal

import (
	"fmt"
	"io"
)

// TranslationMarker prefixes every string produced through the Adapter.
const TranslationMarker = "Adapter: (TRANSLATED) "

const (
	defaultTargetBehavior = "Target: The default target's behavior."
	specialBehavior       = ".eetpadA eht fo roivaheb laicepS"
)

// Target is the contract client code is written against.
type Target interface {
	Request() string
}

// DefaultTarget is the stock Target implementation.
type DefaultTarget struct{}

// Request returns the default target's fixed description.
func (DefaultTarget) Request() string {
	return defaultTargetBehavior
}

// Adaptee has useful behaviour but returns it reversed, so clients cannot use
// it directly.
type Adaptee struct{}

// SpecificRequest returns the adaptee's behaviour in its native shape.
func (*Adaptee) SpecificRequest() string {
	return specialBehavior
}

// Adapter makes an Adaptee usable wherever a Target is expected.
type Adapter struct {
	adaptee *Adaptee
}

// NewAdapter binds an Adapter to adaptee for the adapter's lifetime. A nil
// adaptee is replaced with a fresh one.
func NewAdapter(adaptee *Adaptee) *Adapter {
	if adaptee == nil {
		adaptee = &Adaptee{}
	}
	return &Adapter{adaptee: adaptee}
}

// Request reverses the adaptee's output back to forward order and marks it
// as translated.
func (a *Adapter) Request() string {
	return TranslationMarker + Reverse(a.adaptee.SpecificRequest())
}

// Reverse returns s with its runes in reverse order.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// ClientCode is written only against Target and prints whatever it returns.
func ClientCode(w io.Writer, target Target) {
	fmt.Fprint(w, target.Request())
}

// Run prints the whole walkthrough: the default target, the adaptee's raw
// output and the same adaptee used through the Adapter.
func Run(w io.Writer) {
	fmt.Fprintln(w, "Client: I can work just fine with the Target objects:")
	ClientCode(w, DefaultTarget{})
	fmt.Fprint(w, "\n\n")

	adaptee := &Adaptee{}
	fmt.Fprintln(w, "Client: The Adaptee class has a weird interface. See, I don't understand it:")
	fmt.Fprintf(w, "Adaptee: %s", adaptee.SpecificRequest())
	fmt.Fprint(w, "\n\n")

	fmt.Fprintln(w, "Client: But I can work with it via the Adapter:")
	ClientCode(w, NewAdapter(adaptee))
	fmt.Fprintln(w)
}
