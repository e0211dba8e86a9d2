package settings

// Opener opens an external URL.
type Opener interface {
	OpenURL(rawURL string)
}

type activator struct {
	opener  Opener
	handled bool
}

// Activate performs the default interaction for item: toggle, advance,
// invoke or open. It returns false for value entries, which the consumer
// edits itself.
func Activate(item Item, opener Opener) bool {
	a := &activator{opener: opener}
	item.Accept(a)
	return a.handled
}

func (a *activator) VisitBoolean(b *BooleanItem) { b.Toggle(); a.handled = true }
func (a *activator) VisitChoice(c ChoiceField)   { c.Next(); a.handled = true }
func (a *activator) VisitAction(i *ActionItem)   { i.Invoke(); a.handled = true }
func (a *activator) VisitVersion(v *VersionItem) { v.Invoke(); a.handled = true }
func (a *activator) VisitValue(ValueField)       {}

func (a *activator) VisitLink(l Link) {
	if a.opener != nil {
		a.opener.OpenURL(l.URL())
	}
	a.handled = true
}
