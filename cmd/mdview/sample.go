package main

// sampleDocument is shown when no file is given. It exercises every
// construct the renderer knows about, so it doubles as a smoke test for
// terminal setups.
const sampleDocument = `# mdview

A small terminal viewer for markdown files. Run it with a path to view
your own document, or read on to see what it can display.

## Text styles

Plain text with *emphasis*, **strong emphasis**, ***both at once***,
~~strikethrough~~ and ` + "`inline code`" + `. A backslash at the end of a line\
forces a hard break, as do two trailing spaces.

Escapes work too: \*not emphasized\* and \` + "`" + `not code\` + "`" + `.

## Links

- [Relative link](docs/guide.md) resolves against the file's directory
- [Titled link](https://example.com/reference "reference manual")
- Bare URLs are promoted: https://example.com/changelog
- Angle form: <https://example.com/api>
- Mail: <hello@example.com>

![diagram of the parse pipeline](images/pipeline.png)

## Lists

1. Ordered items renumber themselves
1. regardless of the digits in the source
1. so reordering lines never breaks numbering
   1. nested ordered lists restart at one
   2. and indent under their parent

- Unordered items use depth-based bullets
  - second level
    - third level
- Items may hold multiple paragraphs

  like this one, indented to the item's content column.

## Code

    Indented blocks are code too,
    four spaces deep.

` + "```javascript" + `
function greet(name) {
  return "hello, " + name;
}
` + "```" + `

` + "```" + `
fences without a language get no label
` + "```" + `

## Quotes

> Block quotes carry a gutter bar.
>
> > They nest, and may contain **inline** styling
> > or even lists:
> > - one
> > - two

## Tables

| Column   | Alignment | Notes                      |
|:---------|:---------:|---------------------------:|
| first    |  center   | right-aligned cell         |
| second   |   also    | rows are padded to the     |
| third    |  centered | header's width             |

---

That horizontal rule above was three dashes. Press ` + "`w`" + ` to toggle
wrapping, ` + "`r`" + ` to reload, and ` + "`q`" + ` to quit.
`
