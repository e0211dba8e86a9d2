package config

// Overrides are command-line values that win over the file for one run.
// A nil field is not overridden.
type Overrides struct {
	Reversed   *bool
	TwoColumns *bool
}

// Apply returns c with every override set.
func (o Overrides) Apply(c Config) Config {
	if o.Reversed != nil {
		c.Panel.Reversed = *o.Reversed
	}
	if o.TwoColumns != nil {
		c.Panel.TwoColumns = *o.TwoColumns
	}
	return c
}

// Forget drops the overrides whose field in effective no longer holds the
// overriding value, i.e. the ones the user has since changed.
func (o Overrides) Forget(effective Config) Overrides {
	if o.Reversed != nil && *o.Reversed != effective.Panel.Reversed {
		o.Reversed = nil
	}
	if o.TwoColumns != nil && *o.TwoColumns != effective.Panel.TwoColumns {
		o.TwoColumns = nil
	}
	return o
}

// Persisted returns effective with overridden fields reset to their values
// in file, which is what should be written back to disk.
func (o Overrides) Persisted(effective, file Config) Config {
	if o.Reversed != nil {
		effective.Panel.Reversed = file.Panel.Reversed
	}
	if o.TwoColumns != nil {
		effective.Panel.TwoColumns = file.Panel.TwoColumns
	}
	return effective
}
