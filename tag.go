package sdl

import "sort"

// contentName is the sentinel tag name for an anonymous, values-only tag.
const contentName = "content"

type attribute struct {
	namespace string
	value     Value
}

// Tag is a named, possibly-namespaced record of values, attributes, and
// child tags. The zero value is not valid; use NewTag.
//
// Values and Children are exposed directly rather than through
// copy-on-read accessors; a caller holding a slice it obtained earlier
// shares its backing array until an append reallocates it, but keeps its
// own length, so it does not show later appends made through
// AddValue/AddChild, same as any other Go slice field.
type Tag struct {
	Namespace string
	Name      string
	Values    []Value
	Children  []*Tag

	attributes map[string]attribute
}

// NewTag builds a Tag, validating namespace (if non-empty) and name.
func NewTag(namespace, name string) (*Tag, error) {
	t := &Tag{attributes: map[string]attribute{}}
	if err := t.SetNamespaceName(namespace, name); err != nil {
		return nil, err
	}
	return t, nil
}

// mustNewTag is used internally by the assembler, which has already
// validated the identifiers coming out of the tokenizer.
func mustNewTag(namespace, name string) *Tag {
	t, err := NewTag(namespace, name)
	if err != nil {
		panic(err)
	}
	return t
}

// SetNamespaceName revalidates and replaces both fields together, since a
// namespace is only meaningful paired with its name.
func (t *Tag) SetNamespaceName(namespace, name string) error {
	if !validIdentifier(name) {
		return &CoercionError{Type: "identifier " + name}
	}
	if namespace != "" && !validIdentifier(namespace) {
		return &CoercionError{Type: "identifier " + namespace}
	}
	t.Namespace = namespace
	t.Name = name
	return nil
}

// QualifiedName is "namespace:name", or just "name" when the namespace is
// empty.
func (t *Tag) QualifiedName() string {
	if t.Namespace == "" {
		return t.Name
	}
	return t.Namespace + ":" + t.Name
}

// IsAnonymous reports whether t is the implicit content tag produced from
// a values-only line.
func (t *Tag) IsAnonymous() bool {
	return t.Namespace == "" && t.Name == contentName
}

// AddValue coerces x and appends it to Values.
func (t *Tag) AddValue(x interface{}) error {
	v, err := coerce(x)
	if err != nil {
		return err
	}
	t.Values = append(t.Values, v)
	return nil
}

// SetAttribute validates name (and namespace, if non-empty), coerces x,
// and stores or replaces the attribute. Attribute names are unique within
// a tag regardless of namespace.
func (t *Tag) SetAttribute(namespace, name string, x interface{}) error {
	if !validIdentifier(name) {
		return &CoercionError{Type: "identifier " + name}
	}
	if namespace != "" && !validIdentifier(namespace) {
		return &CoercionError{Type: "identifier " + namespace}
	}
	v, err := coerce(x)
	if err != nil {
		return err
	}
	if t.attributes == nil {
		t.attributes = map[string]attribute{}
	}
	t.attributes[name] = attribute{namespace: namespace, value: v}
	return nil
}

// Attribute returns the value and namespace stored under name, and
// whether it was present.
func (t *Tag) Attribute(name string) (value Value, namespace string, ok bool) {
	a, ok := t.attributes[name]
	return a.value, a.namespace, ok
}

// AttributeNames returns the tag's attribute names in ascending order,
// matching serialization order.
func (t *Tag) AttributeNames() []string {
	names := make([]string, 0, len(t.attributes))
	for n := range t.attributes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// AddChild appends child to t's children. The assembler only ever builds
// strictly downward, so no cycle is possible there; a caller that
// constructs cycles by hand is on their own.
func (t *Tag) AddChild(child *Tag) {
	t.Children = append(t.Children, child)
}

// Child returns the first direct child named name, or nil.
func (t *Tag) Child(name string) *Tag {
	for _, c := range t.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Equal reports whether t and other serialize identically, independent of attribute insertion
// order.
func (t *Tag) Equal(other *Tag) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.String() == other.String()
}
