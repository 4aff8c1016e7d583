package jsonschema

// Context is the per-validation bundle threaded through every keyword
// function call: the two location stacks, the active dispatch table, a
// back-pointer to the driver (so applicator keywords can recurse via
// descend), and the set of (schema, instance) pairs currently being
// descended into, used to short-circuit cyclic $ref chains.
type Context struct {
	instanceLoc *location
	keywordLoc  *location
	table       *Table
	driver      *Validator
	visiting    map[visitKey]bool
}

// visitKey identifies one (schema node, instance node) descent in progress.
type visitKey struct {
	schema   any // bool or *Object
	instance any // identityOf(instance)
}

func newContext(driver *Validator, table *Table) *Context {
	return &Context{
		instanceLoc: &location{},
		keywordLoc:  &location{},
		table:       table,
		driver:      driver,
		visiting:    make(map[visitKey]bool),
	}
}

func (c *Context) pushInstance(segment any) { c.instanceLoc.push(segment) }
func (c *Context) popInstance()             { c.instanceLoc.pop() }
func (c *Context) pushKeyword(segment any)  { c.keywordLoc.push(segment) }
func (c *Context) popKeyword()              { c.keywordLoc.pop() }

// newError builds a ValidationError anchored at the Context's current
// location stacks.
func (c *Context) newError(code, message string, params map[string]any) *ValidationError {
	return newValidationError(c, code, message, params)
}
