package presentation_test

import (
	"fmt"
	"log"

	presentation "github.com/alnah/mdbook-presentation"
)

func Example() {
	pre, err := presentation.New(presentation.WithoutDecoration())
	if err != nil {
		log.Fatal(err)
	}

	book := &presentation.Book{Items: []*presentation.Item{
		presentation.ChapterItem(&presentation.Chapter{
			Name:    "Intro",
			Content: "$slides-only$\n# Welcome\n$slides-only-end$\n$notes$\nsmile\n$notes-end$\n",
		}),
	}}

	if err := pre.Run(book); err != nil {
		log.Fatal(err)
	}
	fmt.Print(book.Items[0].Chapter.Content)
	// Output:
	// <div class="presentation-only">
	// <h1>Welcome</h1>
	// </div>
	//
	// <!--notes
	// smile
	// -->
}

func ExampleNew_customRules() {
	pre, err := presentation.New(
		presentation.WithoutDecoration(),
		presentation.WithRules(
			presentation.CommentRule("aside", "<aside>", "</aside>"),
		),
	)
	if err != nil {
		log.Fatal(err)
	}

	out, err := pre.Rewrite("Text $aside$*raw*$aside-end$.")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out)
	// Output: Text <aside>*raw*</aside>.
}
