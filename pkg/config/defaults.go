package config

// Built-in glob lists used when a category is not configured. Extension
// entries expand to "**/*.ext" plus a "**/.*.ext" hidden-file variant, since
// a leading '*' never matches a leading dot. Exact filenames match at the
// scan root only.

var docExtensions = []string{
	"md", "txt", "mdx", "rst", "adoc", "asciidoc", "textile", "rtf", "tex",
	"log", "me", "pdf", "doc", "docx", "odt", "ppt", "pptx", "odp", "html",
	"htm", "man", "1", "2", "3", "4", "5", "6", "7", "8", "info",
}

var docFilenames = []string{
	"README",
	"README.md",
	"README.rst",
	"README.txt",
	"CONTRIBUTING",
	"CONTRIBUTING.md",
}

var srcExtensions = []string{
	"rs", "py", "js", "ts", "java", "c", "cpp", "h", "hpp", "go", "rb",
	"php", "swift", "kt", "kts", "cs", "pl", "lua", "r", "m", "scala",
	"groovy", "dart", "fs", "fsx", "fsi", "erl", "hrl", "ex", "exs", "elm",
	"clj", "cljs", "cljc", "edn", "hs", "lhs", "purs", "idr", "agda", "vb",
	"vbs", "pas", "d", "nim", "cr", "zig", "vala", "asm", "s", "sh", "bash",
	"zsh", "fish", "ps1", "bat", "cmd", "tcl", "awk", "applescript", "json",
	"yaml", "yml", "toml", "xml", "ini", "cfg", "conf", "env", "properties",
	"reg", "neon", "plist", "sql", "ddl", "dml", "psql", "plsql", "hql",
	"cql", "mk", "cmake", "gradle", "sbt", "csproj", "vbproj", "fsproj",
	"sln", "vcproj", "vcxproj", "xcconfig", "xcscheme", "podspec", "gemspec",
	"mod", "sum", "work", "tf", "tfvars", "hcl", "nomad", "sentinel", "rego",
	"css", "scss", "less", "sass", "styl", "postcss", "pcss", "svg", "xsl",
	"xslt", "jsp", "asp", "aspx", "cshtml", "vbhtml", "php3", "php4", "php5",
	"phtml", "ejs", "xhtml", "vue", "svelte", "jsx", "tsx", "htc", "tag",
	"tld", "dockerfile", "containerfile", "graphql", "gql", "proto",
	"thrift", "avsc", "xsd", "wsdl", "raml", "oas2", "oas3", "asyncapi",
	"patch", "diff", "erb", "haml", "slim", "pug", "jade", "mustache",
	"hbs", "handlebars", "liquid", "njk", "jinja", "j2", "twig", "ipynb",
	"gd", "sol", "qml", "vert", "frag", "geom", "comp", "tesc", "tese",
	"glsl", "hlsl", "cg", "metal", "rules", "yml_rules", "feature",
}

var srcFilenames = []string{
	"Makefile", "makefile", "GNUmakefile", "CMakeLists.txt", "build.gradle",
	"pom.xml", "setup.py", "Rakefile", "rakefile", "Gemfile", "gemspec",
	"Podfile", "Fastfile", "Brewfile", "SConstruct", "wscript", "BUILD",
	"WORKSPACE", "package.json", "composer.json", "Pipfile",
	"requirements.txt", "Cargo.toml", "go.mod", "go.sum",
	"package-lock.json", "pnpm-lock.yaml", "pyproject.toml", "Dockerfile",
	"docker-compose.yml", "docker-compose.yaml", "Jenkinsfile",
	"Vagrantfile", "Procfile", ".gitlab-ci.yml", ".editorconfig",
	".gitattributes", ".gitmodules", "babel.config.js", "webpack.config.js",
	"tsconfig.json", "vite.config.js", "tailwind.config.js", "justfile",
	"main.tf", "variables.tf", "outputs.tf", "terraform.tfvars",
}

// DefaultDocsGlobs returns the built-in pattern list for the docs category.
func DefaultDocsGlobs() []string {
	return expandGlobs(docExtensions, docFilenames)
}

// DefaultSrcGlobs returns the built-in pattern list for the src category.
func DefaultSrcGlobs() []string {
	return expandGlobs(srcExtensions, srcFilenames)
}

func expandGlobs(extensions, filenames []string) []string {
	globs := make([]string, 0, 2*len(extensions)+len(filenames))
	for _, ext := range extensions {
		globs = append(globs, "**/*."+ext, "**/.*."+ext)
	}
	return append(globs, filenames...)
}
