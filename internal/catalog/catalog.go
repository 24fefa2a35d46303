// Package catalog provides the fixed set of phishing test email templates.
// The catalog is built once at startup and never mutated.
package catalog

import "sort"

// Template is a canned test email: subject, body, sender, and a
// difficulty label describing how convincing the lure is.
// The body contains a literal {link} placeholder for the tracking URL.
type Template struct {
	Name       string
	Subject    string
	Body       string
	Sender     string
	Difficulty string
}

// Catalog is an immutable name -> template mapping.
type Catalog struct {
	templates map[string]Template
}

// Builtin returns the catalog of built-in templates.
func Builtin() *Catalog {
	return &Catalog{templates: map[string]Template{
		"password_reset": {
			Name:    "password_reset",
			Subject: "Urgent password reset required",
			Body: `Dear employee,

Our security system has detected suspicious activity on your account.
An immediate password reset is required to protect your data.

Reset link: {link}

Regards,
IT Security Team`,
			Sender:     "security@company.com",
			Difficulty: "low",
		},
		"software_update": {
			Name:    "software_update",
			Subject: "Critical software update",
			Body: `Hello,

A mandatory security update needs to be installed on your workstation.
Please follow the link below to install it:

{link}

Regards,
IT Support`,
			Sender:     "it-support@company.com",
			Difficulty: "medium",
		},
		"ceo_request": {
			Name:    "ceo_request",
			Subject: "Urgent request from management",
			Body: `Good afternoon,

Please review the attached document at your earliest convenience.
It is available here:

{link}

Best regards,
Chief Executive Officer`,
			Sender:     "ceo@company.com",
			Difficulty: "high",
		},
	}}
}

// Lookup returns the template with the given name. Lookups are
// exact-key and case-sensitive.
func (c *Catalog) Lookup(name string) (Template, bool) {
	tmpl, ok := c.templates[name]
	return tmpl, ok
}

// Names returns all template names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.templates))
	for name := range c.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all templates ordered by name.
func (c *Catalog) All() []Template {
	templates := make([]Template, 0, len(c.templates))
	for _, name := range c.Names() {
		templates = append(templates, c.templates[name])
	}
	return templates
}
