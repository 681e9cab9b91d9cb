package keymap

// Item is one node in the keymap tree. Exactly three types implement it:
// *Group, Command and FileRef. Consumers discriminate with a type switch.
type Item interface {
	// Describe returns the item's description, or "" if it has none.
	Describe() string

	isItem()
}

// Command binds a key sequence to a host command id.
type Command struct {
	// ID is the opaque command identifier. Never empty; the parser
	// rejects empty ids.
	ID string

	// Desc is an optional human-readable description.
	Desc string
}

// Describe returns the command's description.
func (c Command) Describe() string { return c.Desc }

func (Command) isItem() {}

// FileRef binds a key sequence to a file to open.
type FileRef struct {
	// Path is the file name or path. Never empty.
	Path string

	// Desc is an optional human-readable description.
	Desc string
}

// Describe returns the file reference's description.
func (f FileRef) Describe() string { return f.Desc }

func (FileRef) isItem() {}
