package catalog

import "brightforge/internal/domain"

// ReminderCatalog mapea packageType al contenido estático del correo de
// recordatorio. Las claves deben coincidir exactamente con los valores de
// PackageViewEvent.PackageType; un tipo fuera de la tabla se omite en
// silencio durante el barrido.
var ReminderCatalog = map[string]domain.ReminderContent{
	"digital-foundation": {
		Name:        "Digital Foundation",
		Price:       "$4,500",
		Description: "Everything a growing business needs to look professional online.",
		Features: []string{
			"Responsive marketing site",
			"Basic SEO setup",
			"Contact and quote forms",
		},
		CTA: "Get started today",
		URL: "https://brightforge.example.com/packages/digital-foundation",
	},
	"growth-accelerator": {
		Name:        "Growth Accelerator",
		Price:       "$12,000",
		Description: "Automation and conversion tooling for teams ready to scale their pipeline.",
		Features: []string{
			"Marketing automation workflows",
			"CRM integration",
			"Conversion funnel optimization",
		},
		CTA: "Accelerate your growth",
		URL: "https://brightforge.example.com/packages/growth-accelerator",
	},
	"enterprise-solution": {
		Name:        "Enterprise Solution",
		Price:       "$45,000",
		Description: "Custom platforms with the security and compliance posture large teams require.",
		Features: []string{
			"Custom platform development",
			"SSO and compliance tooling",
			"Dedicated infrastructure",
		},
		CTA: "Talk to our architects",
		URL: "https://brightforge.example.com/packages/enterprise-solution",
	},
}
