package project

// TemplateKind names a project template.
type TemplateKind string

const (
	Console TemplateKind = "console"
	WebAPI  TemplateKind = "webapi"
	MVC     TemplateKind = "mvc"
)

// Template is a fixed project skeleton.
type Template struct {
	Kind        TemplateKind
	Name        string
	Description string
	// IsWeb templates get a preview column.
	IsWeb bool
	files []*FileNode
}

// Templates lists the registry in display order.
var Templates = []*Template{consoleTemplate, webAPITemplate, mvcTemplate}

// GetTemplate returns the template for kind, or nil.
func GetTemplate(kind TemplateKind) *Template {
	for _, t := range Templates {
		if t.Kind == kind {
			return t
		}
	}
	return nil
}

// IsWeb reports whether kind is a web-oriented template.
func (k TemplateKind) IsWeb() bool {
	t := GetTemplate(k)
	return t != nil && t.IsWeb
}

func folder(id, name, parent string, children ...string) *FileNode {
	return &FileNode{ID: id, Name: name, Kind: KindFolder, ParentID: parent, Children: children}
}

func file(id, name, parent, content string) *FileNode {
	return &FileNode{ID: id, Name: name, Kind: KindFile, ParentID: parent, Content: content}
}

var consoleTemplate = &Template{
	Kind:        Console,
	Name:        "Console Application",
	Description: "A project for creating a command-line application that can run on .NET Core.",
	files: []*FileNode{
		folder(RootID, "MyConsoleApp", "", "prog", "csproj"),
		file("prog", "Program.cs", RootID, `using System;

namespace MyConsoleApp
{
    class Program
    {
        static void Main(string[] args)
        {
            Console.WriteLine("Hello, World!");
            Console.WriteLine("Current Time: " + DateTime.Now);
        }
    }
}`),
		file("csproj", "MyConsoleApp.csproj", RootID, `<Project Sdk="Microsoft.NET.Sdk">
  <PropertyGroup>
    <OutputType>Exe</OutputType>
    <TargetFramework>net7.0</TargetFramework>
  </PropertyGroup>
</Project>`),
	},
}

var webAPITemplate = &Template{
	Kind:        WebAPI,
	Name:        "ASP.NET Core Web API",
	Description: "A project template for creating an ASP.NET Core RESTful HTTP service.",
	IsWeb:       true,
	files: []*FileNode{
		folder(RootID, "MyWebApi", "", "prog", "controller-dir"),
		file("prog", "Program.cs", RootID, `var builder = WebApplication.CreateBuilder(args);
builder.Services.AddControllers();

var app = builder.Build();
app.MapControllers();
app.Run();`),
		folder("controller-dir", "Controllers", RootID, "ctrl"),
		file("ctrl", "WeatherController.cs", "controller-dir", `using Microsoft.AspNetCore.Mvc;

[ApiController]
[Route("[controller]")]
public class WeatherController : ControllerBase
{
    [HttpGet]
    public IActionResult Get() => Ok(new { Message = "Hello from Gemini .NET Sandbox!", Temp = 25 });
}`),
	},
}

var mvcTemplate = &Template{
	Kind:        MVC,
	Name:        "ASP.NET Core MVC",
	Description: "A project template for creating an ASP.NET Core application with Views and Controllers.",
	IsWeb:       true,
	files: []*FileNode{
		folder(RootID, "MyMvcApp", "", "prog", "controllers", "views"),
		file("prog", "Program.cs", RootID, `var builder = WebApplication.CreateBuilder(args);
builder.Services.AddControllersWithViews();

var app = builder.Build();
app.UseStaticFiles();
app.MapControllerRoute(name: "default", pattern: "{controller=Home}/{action=Index}/{id?}");
app.Run();`),
		folder("controllers", "Controllers", RootID, "homectrl"),
		file("homectrl", "HomeController.cs", "controllers", `using Microsoft.AspNetCore.Mvc;

public class HomeController : Controller
{
    public IActionResult Index() => View();
}`),
		folder("views", "Views", RootID, "homeviewdir"),
		folder("homeviewdir", "Home", "views", "indexview"),
		file("indexview", "Index.cshtml", "homeviewdir", `@{ ViewData["Title"] = "Home Page"; }
<div class="text-center">
    <h1 class="display-4">Welcome to .NET Web IDE</h1>
    <p>Learn about <a href="https://docs.microsoft.com/aspnet/core">building Web apps with ASP.NET Core</a>.</p>
</div>`),
	},
}
