package ir

// Class is a class or interface declaration. Classes have at most one
// superclass and any number of implemented interfaces.
type Class struct {
	Name       string
	Super      *Class
	Interfaces []*Class
	Methods    []*Method
	Abstract   bool
	Interface  bool
}

func (c *Class) String() string { return c.Name }

// DeclaredMethod looks up a declared method (abstract or not) by
// subsignature.
func (c *Class) DeclaredMethod(subsig string) (*Method, bool) {
	for _, m := range c.Methods {
		if m.Subsignature() == subsig {
			return m, true
		}
	}
	return nil, false
}

// Hierarchy is a read-only view of the class hierarchy of one program. It
// answers the subtype queries class-hierarchy analysis needs.
type Hierarchy struct {
	classes      map[string]*Class
	order        []*Class
	subclasses   map[*Class][]*Class
	implementors map[*Class][]*Class
}

func NewHierarchy() *Hierarchy {
	return &Hierarchy{
		classes:      make(map[string]*Class),
		subclasses:   make(map[*Class][]*Class),
		implementors: make(map[*Class][]*Class),
	}
}

// Register adds a class and indexes it under its superclass and
// implemented interfaces. Classes must be registered after the classes
// they extend or implement.
func (h *Hierarchy) Register(c *Class) {
	h.classes[c.Name] = c
	h.order = append(h.order, c)
	if c.Super != nil {
		h.subclasses[c.Super] = append(h.subclasses[c.Super], c)
	}
	for _, iface := range c.Interfaces {
		h.implementors[iface] = append(h.implementors[iface], c)
	}
}

// Class resolves a class by name.
func (h *Hierarchy) Class(name string) (*Class, bool) {
	c, ok := h.classes[name]
	return c, ok
}

// Classes returns all registered classes in registration order.
func (h *Hierarchy) Classes() []*Class {
	return append([]*Class(nil), h.order...)
}

// DirectSubclassesOf returns the classes whose immediate superclass is c.
func (h *Hierarchy) DirectSubclassesOf(c *Class) []*Class {
	return h.subclasses[c]
}

// DirectImplementorsOf returns the classes and interfaces that directly
// implement or extend the interface c.
func (h *Hierarchy) DirectImplementorsOf(c *Class) []*Class {
	return h.implementors[c]
}

// Method resolves a declared method by class name and subsignature.
func (h *Hierarchy) Method(class, subsig string) (*Method, bool) {
	c, ok := h.classes[class]
	if !ok {
		return nil, false
	}
	return c.DeclaredMethod(subsig)
}
