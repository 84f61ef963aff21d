package store

import (
	"context"

	"github.com/codequiz/backend/internal/domain/question"
)

// Seed loads the builtin question set on first run. It does nothing when the
// pool already has questions.
func (s *SQLiteStore) Seed(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM questions").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, q := range defaultQuestions {
		if err := s.SaveQuestion(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

var defaultQuestions = []question.Question{
	// HTML
	{ID: "h1", Category: "html", Text: "What does HTML stand for?", Options: []string{"Hyper Text Markup Language", "High Tech Modern Language", "Hyper Transfer Markup Language", "Home Tool Markup Language"}, CorrectIndex: 0},
	{ID: "h2", Category: "html", Text: "Which tag is used for the largest heading?", Options: []string{"<head>", "<h6>", "<h1>", "<header>"}, CorrectIndex: 2},
	{ID: "h3", Category: "html", Text: "Which tag creates a hyperlink?", Options: []string{"<link>", "<a>", "<href>", "<url>"}, CorrectIndex: 1},
	{ID: "h4", Category: "html", Text: "Which tag is used for line break?", Options: []string{"<break>", "<lb>", "<br>", "<newline>"}, CorrectIndex: 2},
	{ID: "h5", Category: "html", Text: "Which attribute specifies an image source?", Options: []string{"href", "src", "link", "source"}, CorrectIndex: 1},
	{ID: "h6", Category: "html", Text: "Which tag creates an unordered list?", Options: []string{"<ol>", "<list>", "<ul>", "<li>"}, CorrectIndex: 2},
	{ID: "h7", Category: "html", Text: "Which tag is used for table row?", Options: []string{"<td>", "<tr>", "<th>", "<table>"}, CorrectIndex: 1},
	{ID: "h8", Category: "html", Text: "Which input type creates a checkbox?", Options: []string{"check", "checkbox", "box", "tick"}, CorrectIndex: 1},
	{ID: "h9", Category: "html", Text: "Which tag defines the document body?", Options: []string{"<content>", "<main>", "<body>", "<section>"}, CorrectIndex: 2},
	{ID: "h10", Category: "html", Text: "Which attribute provides alternative text for images?", Options: []string{"title", "alt", "text", "desc"}, CorrectIndex: 1},

	// CSS
	{ID: "c1", Category: "css", Text: "What does CSS stand for?", Options: []string{"Cascading Style Sheets", "Creative Style System", "Computer Style Sheets", "Colorful Style Sheets"}, CorrectIndex: 0},
	{ID: "c2", Category: "css", Text: "Which property changes text color?", Options: []string{"text-color", "font-color", "color", "foreground"}, CorrectIndex: 2},
	{ID: "c3", Category: "css", Text: "Which property changes background color?", Options: []string{"bg-color", "background-color", "color-background", "back-color"}, CorrectIndex: 1},
	{ID: "c4", Category: "css", Text: "How do you select an element with id \"demo\"?", Options: []string{".demo", "#demo", "demo", "*demo"}, CorrectIndex: 1},
	{ID: "c5", Category: "css", Text: "How do you select elements with class \"test\"?", Options: []string{"#test", ".test", "test", "*test"}, CorrectIndex: 1},
	{ID: "c6", Category: "css", Text: "Which property controls text size?", Options: []string{"text-size", "font-size", "text-style", "font-height"}, CorrectIndex: 1},
	{ID: "c7", Category: "css", Text: "Which property adds space inside an element?", Options: []string{"margin", "spacing", "padding", "border"}, CorrectIndex: 2},
	{ID: "c8", Category: "css", Text: "Which property adds space outside an element?", Options: []string{"padding", "margin", "border", "spacing"}, CorrectIndex: 1},
	{ID: "c9", Category: "css", Text: "Which value makes an element invisible but keeps space?", Options: []string{"display: none", "visibility: hidden", "opacity: 0", "hidden: true"}, CorrectIndex: 1},
	{ID: "c10", Category: "css", Text: "Which property creates flexbox layout?", Options: []string{"display: flex", "layout: flex", "flex: true", "flexbox: on"}, CorrectIndex: 0},

	// JavaScript
	{ID: "j1", Category: "javascript", Text: "Which keyword declares a variable?", Options: []string{"var", "variable", "v", "declare"}, CorrectIndex: 0},
	{ID: "j2", Category: "javascript", Text: "Which method writes to the console?", Options: []string{"console.write()", "console.log()", "log.console()", "print()"}, CorrectIndex: 1},
	{ID: "j3", Category: "javascript", Text: "Which operator checks strict equality?", Options: []string{"==", "===", "=", "!="}, CorrectIndex: 1},
	{ID: "j4", Category: "javascript", Text: "Which method adds an element to array end?", Options: []string{"add()", "append()", "push()", "insert()"}, CorrectIndex: 2},
	{ID: "j5", Category: "javascript", Text: "Which keyword creates a function?", Options: []string{"func", "function", "def", "method"}, CorrectIndex: 1},
	{ID: "j6", Category: "javascript", Text: "Which method selects an element by ID?", Options: []string{"getElement()", "querySelector()", "getElementById()", "findById()"}, CorrectIndex: 2},
	{ID: "j7", Category: "javascript", Text: "Which event fires when a button is clicked?", Options: []string{"onpress", "onclick", "onbutton", "onactivate"}, CorrectIndex: 1},
	{ID: "j8", Category: "javascript", Text: "Which keyword declares a constant?", Options: []string{"constant", "const", "final", "static"}, CorrectIndex: 1},
	{ID: "j9", Category: "javascript", Text: "Which method converts string to integer?", Options: []string{"toInteger()", "parseInt()", "convertInt()", "int()"}, CorrectIndex: 1},
	{ID: "j10", Category: "javascript", Text: "Which symbol is used for single-line comments?", Options: []string{"#", "//", "/*", "--"}, CorrectIndex: 1},

	// Python
	{ID: "p1", Category: "python", Text: "Which keyword defines a function in Python?", Options: []string{"function", "func", "def", "define"}, CorrectIndex: 2},
	{ID: "p2", Category: "python", Text: "Which function prints output?", Options: []string{"echo()", "print()", "write()", "output()"}, CorrectIndex: 1},
	{ID: "p3", Category: "python", Text: "Which symbol is used for comments?", Options: []string{"//", "#", "/*", "--"}, CorrectIndex: 1},
	{ID: "p4", Category: "python", Text: "Which keyword creates a loop?", Options: []string{"loop", "repeat", "for", "iterate"}, CorrectIndex: 2},
	{ID: "p5", Category: "python", Text: "Which data type stores True/False?", Options: []string{"boolean", "bool", "bit", "binary"}, CorrectIndex: 1},
	{ID: "p6", Category: "python", Text: "Which method adds item to list?", Options: []string{"add()", "push()", "append()", "insert()"}, CorrectIndex: 2},
	{ID: "p7", Category: "python", Text: "Which keyword handles exceptions?", Options: []string{"catch", "except", "handle", "error"}, CorrectIndex: 1},
	{ID: "p8", Category: "python", Text: "Which function gets user input?", Options: []string{"get()", "read()", "input()", "scan()"}, CorrectIndex: 2},
	{ID: "p9", Category: "python", Text: "Which keyword imports a module?", Options: []string{"include", "require", "import", "use"}, CorrectIndex: 2},
	{ID: "p10", Category: "python", Text: "Which function returns list length?", Options: []string{"size()", "count()", "length()", "len()"}, CorrectIndex: 3},

	// C++
	{ID: "cpp1", Category: "cpp", Text: "Which header is needed for cout?", Options: []string{"<stdio.h>", "<iostream>", "<output>", "<console>"}, CorrectIndex: 1},
	{ID: "cpp2", Category: "cpp", Text: "Which symbol outputs to console?", Options: []string{">>", "<<", "->", "<-"}, CorrectIndex: 1},
	{ID: "cpp3", Category: "cpp", Text: "Which keyword starts the main function?", Options: []string{"void", "main", "int", "start"}, CorrectIndex: 2},
	{ID: "cpp4", Category: "cpp", Text: "Which operator allocates memory?", Options: []string{"malloc", "alloc", "new", "create"}, CorrectIndex: 2},
	{ID: "cpp5", Category: "cpp", Text: "Which keyword defines a class?", Options: []string{"struct", "object", "class", "type"}, CorrectIndex: 2},
	{ID: "cpp6", Category: "cpp", Text: "Which access specifier allows public access?", Options: []string{"open", "public", "global", "extern"}, CorrectIndex: 1},
	{ID: "cpp7", Category: "cpp", Text: "Which symbol is used for pointers?", Options: []string{"&", "*", "@", "#"}, CorrectIndex: 1},
	{ID: "cpp8", Category: "cpp", Text: "Which keyword returns a value from function?", Options: []string{"give", "output", "return", "send"}, CorrectIndex: 2},
	{ID: "cpp9", Category: "cpp", Text: "Which loop checks condition first?", Options: []string{"do-while", "while", "for", "repeat"}, CorrectIndex: 1},
	{ID: "cpp10", Category: "cpp", Text: "Which namespace contains cout?", Options: []string{"system", "std", "io", "console"}, CorrectIndex: 1},

	// Java
	{ID: "jv1", Category: "java", Text: "Which keyword creates an object?", Options: []string{"create", "object", "new", "make"}, CorrectIndex: 2},
	{ID: "jv2", Category: "java", Text: "Which method prints to console?", Options: []string{"print()", "System.out.println()", "console.log()", "echo()"}, CorrectIndex: 1},
	{ID: "jv3", Category: "java", Text: "Which keyword defines a class?", Options: []string{"type", "struct", "class", "object"}, CorrectIndex: 2},
	{ID: "jv4", Category: "java", Text: "Which access modifier is most restrictive?", Options: []string{"public", "protected", "private", "default"}, CorrectIndex: 2},
	{ID: "jv5", Category: "java", Text: "Which keyword inherits a class?", Options: []string{"inherits", "extends", "implements", "derives"}, CorrectIndex: 1},
	{ID: "jv6", Category: "java", Text: "Which data type stores whole numbers?", Options: []string{"float", "double", "int", "char"}, CorrectIndex: 2},
	{ID: "jv7", Category: "java", Text: "Which keyword defines a constant?", Options: []string{"const", "final", "static", "constant"}, CorrectIndex: 1},
	{ID: "jv8", Category: "java", Text: "Which interface implements a list?", Options: []string{"List", "Array", "Collection", "Set"}, CorrectIndex: 0},
	{ID: "jv9", Category: "java", Text: "Which keyword handles exceptions?", Options: []string{"except", "catch", "handle", "error"}, CorrectIndex: 1},
	{ID: "jv10", Category: "java", Text: "Which method is the entry point?", Options: []string{"start()", "run()", "main()", "init()"}, CorrectIndex: 2},
}
