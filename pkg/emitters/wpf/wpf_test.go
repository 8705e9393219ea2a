package wpf_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"uilift/pkg/emitters/wpf"
	"uilift/pkg/ir"
)

func fixtureTemplate() *ir.Template {
	home := ir.NewNode(ir.KindLayout, "root")
	home.Style["width"] = "360px"

	button := ir.NewNode(ir.KindButton, "cta")
	button.Properties["text"] = "Get Started"
	button.Style["background"] = "#1976D2"
	button.Style["position"] = "absolute"
	button.Style["left"] = "24px"
	button.Style["top"] = "48px"
	home.AddChild(button)

	label := ir.NewNode(ir.KindLabel, "title")
	label.Properties["text"] = "Welcome"
	label.Style["font-size"] = "32px"
	label.Style["color"] = "#333333"
	home.AddChild(label)

	field := ir.NewNode(ir.KindTextField, "message")
	field.Properties["placeholder"] = "Your message"
	field.Properties["multiline"] = "true"
	home.AddChild(field)

	card := ir.NewNode(ir.KindCard, "panel")
	home.AddChild(card)

	logo := ir.NewNode(ir.KindImage, "logo")
	home.AddChild(logo)

	checkout := ir.NewNode(ir.KindLayout, "root")
	checkout.AddChild(ir.NewNode(ir.KindLabel, "total"))

	return &ir.Template{
		Name:    "Demo",
		Style:   ir.DefaultStyle(),
		Screens: map[string]*ir.Node{"home_screen": home, "checkout": checkout},
		Assets:  map[string]string{"logo.png": "/tmp/staged/logo.png"},
	}
}

func planFiles(t *testing.T, template *ir.Template) map[string]string {
	t.Helper()
	plan, err := wpf.New().Plan(template)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	files := make(map[string]string, len(plan.Files))
	for _, file := range plan.Files {
		files[file.Path] = string(file.Content)
	}
	return files
}

func TestPlanLaysOutProject(t *testing.T) {
	plan, err := wpf.New().Plan(fixtureTemplate())
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	want := []string{
		"Resources/AppTheme.xaml",
		"Views/CheckoutPage.xaml",
		"Views/CheckoutPage.xaml.cs",
		"Views/HomeScreenPage.xaml",
		"Views/HomeScreenPage.xaml.cs",
		"App.xaml",
		"Images/logo.png",
	}
	if diff := cmp.Diff(want, plan.Paths()); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestResourceDictionary(t *testing.T) {
	files := planFiles(t, fixtureTemplate())
	theme := files["Resources/AppTheme.xaml"]

	for _, want := range []string{
		`xmlns:sys="clr-namespace:System;assembly=mscorlib"`,
		`<SolidColorBrush x:Key="primaryColor" Color="#FF1976D2" />`,
		`<SolidColorBrush x:Key="text_primaryColor" Color="#FF212121" />`,
		`<sys:Double x:Key="padding">16</sys:Double>`,
		`<sys:Double x:Key="border_radius">4</sys:Double>`,
		`<Setter Property="FontSize" Value="14" />`,
		`<Setter Property="FontSize" Value="16" />`,
		`CornerRadius="4"`,
		`<Style x:Key="DefaultButtonStyle" TargetType="Button">`,
		`<Style x:Key="DefaultTextBoxStyle" TargetType="TextBox">`,
	} {
		if !strings.Contains(theme, want) {
			t.Fatalf("theme missing %q:\n%s", want, theme)
		}
	}
}

func TestPageTranslation(t *testing.T) {
	files := planFiles(t, fixtureTemplate())
	page := files["Views/HomeScreenPage.xaml"]

	for _, want := range []string{
		`x:Class="YourNamespace.Views.HomeScreenPage"`,
		`Title="Home Screen"`,
		`<Grid x:Name="root" Width="360"`,
		`<Button x:Name="cta" Style="{StaticResource DefaultButtonStyle}" Content="Get Started" HorizontalAlignment="Left" VerticalAlignment="Top" Margin="24,48,0,0"`,
		`<TextBlock x:Name="title" Text="Welcome" FontSize="32" Foreground="#333333"`,
		`<TextBox x:Name="message" Style="{StaticResource DefaultTextBoxStyle}" Text="Your message" TextWrapping="Wrap" AcceptsReturn="True"`,
		`<Border x:Name="panel" Background="{StaticResource surfaceColor}" CornerRadius="4" Padding="12"`,
		`<Image x:Name="logo" Source="/Images/placeholder.png"`,
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("page missing %q:\n%s", want, page)
		}
	}

	// Buttons take their background from the dictionary style.
	if strings.Contains(page, `Background="#1976D2"`) {
		t.Fatalf("button background should come from the style:\n%s", page)
	}
}

func TestCodeBehind(t *testing.T) {
	files := planFiles(t, fixtureTemplate())
	behind := files["Views/HomeScreenPage.xaml.cs"]

	for _, want := range []string{
		"namespace YourNamespace.Views",
		"public partial class HomeScreenPage : Page",
		"InitializeComponent();",
	} {
		if !strings.Contains(behind, want) {
			t.Fatalf("code-behind missing %q:\n%s", want, behind)
		}
	}
}

func TestApplicationMergesTheme(t *testing.T) {
	files := planFiles(t, fixtureTemplate())
	app := files["App.xaml"]

	if !strings.Contains(app, `x:Class="YourNamespace.App"`) {
		t.Fatalf("application class missing:\n%s", app)
	}
	if !strings.Contains(app, `<ResourceDictionary Source="Resources/AppTheme.xaml"/>`) {
		t.Fatalf("merged dictionary missing:\n%s", app)
	}
}

func TestPrimitiveCoversEveryKind(t *testing.T) {
	emitter := wpf.New()
	for _, kind := range ir.Kinds() {
		if emitter.Primitive(kind) == "" {
			t.Fatalf("kind %s has no control mapping", kind)
		}
	}
	if got := emitter.Primitive(ir.KindUnknown); got != "Border" {
		t.Fatalf("unknown kind should map to Border, got %s", got)
	}
}

func TestPlanIsDeterministic(t *testing.T) {
	template := fixtureTemplate()
	first := planFiles(t, template)
	second := planFiles(t, template)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("plans differ between runs (-first +second):\n%s", diff)
	}
}
