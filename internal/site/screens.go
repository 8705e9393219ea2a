package site

import (
	"fmt"
	"strings"

	"uilift/pkg/ir"
)

// The mock screens follow the common marketing-site shape: a branded header
// and footer shared by every page, a hero with a call to action, a feature
// row, and a contact form. Header and footer are rebuilt per screen so each
// tree owns its children outright.

var menuItems = []string{"Home", "Products", "Services", "About", "Contact"}

func buildHeader() *ir.Node {
	header := ir.NewNode(ir.KindLayout, "header")
	header.Style["height"] = "60px"
	header.Style["background"] = "#333333"

	logo := ir.NewNode(ir.KindImage, "logo")
	logo.Style["width"] = "120px"
	logo.Style["height"] = "40px"
	header.AddChild(logo)

	menu := ir.NewNode(ir.KindNavigation, "main_menu")
	for _, item := range menuItems {
		entry := textNode(ir.KindButton, "menu_"+strings.ToLower(item), item)
		menu.AddChild(entry)
	}
	header.AddChild(menu)

	return header
}

func buildFooter() *ir.Node {
	footer := ir.NewNode(ir.KindLayout, "footer")
	footer.Style["height"] = "60px"
	footer.Style["background"] = "#333333"
	footer.Style["color"] = "#FFFFFF"

	footer.AddChild(textNode(ir.KindLabel, "copyright", "© 2025 Company Name. All rights reserved."))
	return footer
}

func buildHomeScreen() *ir.Node {
	screen := ir.NewNode(ir.KindLayout, "home_screen")
	screen.AddChild(buildHeader())

	hero := ir.NewNode(ir.KindLayout, "hero")
	hero.Style["height"] = "400px"
	hero.Style["background"] = "#f5f5f5"

	title := textNode(ir.KindLabel, "hero_title", "Welcome to Our Website")
	title.Style["font-size"] = "32px"
	title.Style["color"] = "#333333"
	hero.AddChild(title)

	subtitle := textNode(ir.KindLabel, "hero_subtitle", "Discover our amazing products and services")
	subtitle.Style["font-size"] = "18px"
	subtitle.Style["color"] = "#666666"
	hero.AddChild(subtitle)

	cta := textNode(ir.KindButton, "cta_button", "Get Started")
	cta.Style["background"] = "#1976D2"
	cta.Style["color"] = "#FFFFFF"
	cta.Style["padding"] = "12px 24px"
	hero.AddChild(cta)

	screen.AddChild(hero)

	features := ir.NewNode(ir.KindLayout, "features")
	features.Style["padding"] = "40px 0"
	for i := 1; i <= 3; i++ {
		card := ir.NewNode(ir.KindCard, fmt.Sprintf("feature_%d", i))
		card.Style["width"] = "30%"
		card.Style["margin"] = "0 1.5%"

		cardTitle := textNode(ir.KindLabel, fmt.Sprintf("feature_%d_title", i), fmt.Sprintf("Feature %d", i))
		cardTitle.Style["font-size"] = "24px"
		cardTitle.Style["color"] = "#333333"
		card.AddChild(cardTitle)

		cardDesc := textNode(ir.KindLabel, fmt.Sprintf("feature_%d_desc", i), "Lorem ipsum dolor sit amet, consectetur adipiscing elit.")
		cardDesc.Style["font-size"] = "16px"
		cardDesc.Style["color"] = "#666666"
		card.AddChild(cardDesc)

		features.AddChild(card)
	}
	screen.AddChild(features)

	screen.AddChild(buildFooter())
	return screen
}

func buildContactScreen() *ir.Node {
	screen := ir.NewNode(ir.KindLayout, "contact_screen")
	screen.AddChild(buildHeader())

	form := ir.NewNode(ir.KindLayout, "contact_form")
	form.Style["padding"] = "40px"
	form.Style["background"] = "#FFFFFF"

	formTitle := textNode(ir.KindLabel, "form_title", "Contact Us")
	formTitle.Style["font-size"] = "28px"
	formTitle.Style["color"] = "#333333"
	form.AddChild(formTitle)

	form.AddChild(formField("name_field", "Your Name", ""))
	form.AddChild(formField("email_field", "Your Email", ""))
	message := formField("message_field", "Your Message", "150px")
	message.Properties["multiline"] = "true"
	form.AddChild(message)

	submit := textNode(ir.KindButton, "submit_button", "Send Message")
	submit.Style["background"] = "#1976D2"
	submit.Style["color"] = "#FFFFFF"
	submit.Style["padding"] = "12px 24px"
	form.AddChild(submit)

	screen.AddChild(form)
	screen.AddChild(buildFooter())
	return screen
}

func formField(id, placeholder, height string) *ir.Node {
	field := ir.NewNode(ir.KindTextField, id)
	field.Properties["placeholder"] = placeholder
	field.Style["width"] = "100%"
	field.Style["margin"] = "10px 0"
	if height != "" {
		field.Style["height"] = height
	}
	return field
}

func textNode(kind ir.Kind, id, text string) *ir.Node {
	node := ir.NewNode(kind, id)
	node.Properties["text"] = text
	return node
}
