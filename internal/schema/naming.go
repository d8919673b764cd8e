package schema

// TagType name of the discriminant type
func (u *Union) TagType() string {
	return u.Name + "Tag"
}

// TagConst name of the discriminant value of alternative a
func (u *Union) TagConst(a Alternative) string {
	return u.TagType() + a.Name
}

// Private lower camel case union name used for unexported identifiers
func (u *Union) Private() string {
	return gotifier.Private(u.Name)
}

// Count name of the unexported constant holding the number of alternatives
func (u *Union) Count() string {
	return u.Private() + "Alternatives"
}

// Visitor name of the visitor interface
func (u *Union) Visitor() string {
	return u.Name + "Visitor"
}

// Otherwise name of the catch-all clause constructor
func (u *Union) Otherwise() string {
	return u.Name + "Otherwise"
}

// Matcher name of the matcher constructor
func (u *Union) Matcher() string {
	return "New" + u.Name + "Matcher"
}

// Case name of the clause constructor of alternative a
func (u *Union) Case(a Alternative) string {
	return u.Name + "Case" + a.Name
}

// Payload rendered payload type of alternative a
func (u *Union) Payload(a Alternative) string {
	switch {
	case a.Unit:
		return "struct{}"
	case a.Struct:
		return u.Name + a.Name
	default:
		return a.Type
	}
}

// Field name of the storage slot of the alternative
func (a Alternative) Field() string {
	return "as" + a.Name
}

// packageIdentifiers top level identifiers generated for the union itself
func (u *Union) packageIdentifiers() []string {
	res := []string{
		u.Name,
		u.TagType(),
		u.Count(),
		u.Visitor(),
		"Visit" + u.Name,
		"New" + u.Name,
		u.Otherwise(),
		u.Matcher(),
		"Match" + u.Name,
	}
	if u.DefinitionName != "" {
		res = append(res, u.DefinitionName)
	}
	return res
}

// methodIdentifiers fields and methods of the union type not bound to any alternative
func (u *Union) methodIdentifiers() []string {
	return []string{
		"tag",
		"Tag",
		"Holds",
		"Ptr",
		"Get",
		"Set",
		"Clone",
		"Assign",
		"Move",
		"drop",
		"tagIndex",
	}
}

// altPackageIdentifiers top level identifiers generated for alternative a
func (u *Union) altPackageIdentifiers(a Alternative) []string {
	res := []string{
		u.TagConst(a),
		"New" + u.Name + a.Name,
		u.Case(a),
	}
	if a.Struct {
		res = append(res, u.Payload(a))
	}
	return res
}

// altMethodIdentifiers fields and methods of the union type generated for alternative a
func (u *Union) altMethodIdentifiers(a Alternative) []string {
	return []string{
		a.Field(),
		a.Name,
		a.Name + "Ptr",
		"Is" + a.Name,
		"Take" + a.Name,
		"Set" + a.Name,
	}
}
