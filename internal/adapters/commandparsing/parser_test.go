package commandparsing

import (
	"reflect"
	"strings"
	"testing"

	"github.com/AntonioJCosta/shellfyre/internal/core/domain/command"
)

func TestNewWhitespaceParser(t *testing.T) {
	parser := NewWhitespaceParser()
	if parser == nil {
		t.Fatal("NewWhitespaceParser() returned nil")
	}
	if _, ok := parser.(*WhitespaceParser); !ok {
		t.Errorf("NewWhitespaceParser() did not return a *WhitespaceParser, got %T", parser)
	}
}

func redirects(in, out, app string) [3]string {
	var r [3]string
	r[command.Stdin] = in
	r[command.Stdout] = out
	r[command.Append] = app
	return r
}

func TestWhitespaceParser_Parse(t *testing.T) {
	parser := NewWhitespaceParser()
	tests := []struct {
		name string
		line string
		want *command.Command
	}{
		{
			name: "empty line is a blank command",
			line: "",
			want: &command.Command{},
		},
		{
			name: "whitespace only",
			line: " \t  ",
			want: &command.Command{},
		},
		{
			name: "name only",
			line: "ls",
			want: &command.Command{Name: "ls"},
		},
		{
			name: "leading and trailing whitespace",
			line: "\t  ls -a  ",
			want: &command.Command{Name: "ls", Args: []string{"-a"}},
		},
		{
			name: "tabs split tokens",
			line: "grep\t-n\tfoo",
			want: &command.Command{Name: "grep", Args: []string{"-n", "foo"}},
		},
		{
			name: "two stage pipe with output redirect",
			line: "ls -l | grep foo > out.txt",
			want: &command.Command{
				Name: "ls",
				Args: []string{"-l"},
				Next: &command.Command{
					Name:      "grep",
					Args:      []string{"foo"},
					Redirects: redirects("", "out.txt", ""),
				},
			},
		},
		{
			name: "background applies to the chain",
			line: "sleep 5 &",
			want: &command.Command{Name: "sleep", Args: []string{"5"}, Background: true},
		},
		{
			name: "background marker glued to last token",
			line: "sleep 5&",
			want: &command.Command{Name: "sleep", Args: []string{"5"}, Background: true},
		},
		{
			name: "background on a pipe marks every stage",
			line: "yes | head -n 3 &",
			want: &command.Command{
				Name:       "yes",
				Background: true,
				Next:       &command.Command{Name: "head", Args: []string{"-n", "3"}, Background: true},
			},
		},
		{
			name: "auto-complete marker",
			line: "ech?",
			want: &command.Command{Name: "ech", AutoComplete: true},
		},
		{
			name: "auto-complete right after a word extends it",
			line: "cd /us?",
			want: &command.Command{Name: "cd", Args: []string{"/us"}, AutoComplete: true},
		},
		{
			name: "auto-complete after a space starts an empty word",
			line: "cd /us ?",
			want: &command.Command{Name: "cd", Args: []string{"/us", ""}, AutoComplete: true},
		},
		{
			name: "auto-complete after a command name starts its first argument",
			line: "ls \t?",
			want: &command.Command{Name: "ls", Args: []string{""}, AutoComplete: true},
		},
		{
			name: "auto-complete after a pipe starts a new stage",
			line: "ls | ?",
			want: &command.Command{Name: "ls", AutoComplete: true, Next: &command.Command{AutoComplete: true}},
		},
		{
			name: "lone question mark is blank",
			line: " ?",
			want: &command.Command{AutoComplete: true},
		},

		{
			name: "ampersand in the middle is ignored",
			line: "echo a & b",
			want: &command.Command{Name: "echo", Args: []string{"a", "b"}},
		},
		{
			name: "quoted token without whitespace is stripped",
			line: "echo 'hithere'",
			want: &command.Command{Name: "echo", Args: []string{"hithere"}},
		},
		{
			name: "double quotes are stripped too",
			line: `echo "hi"`,
			want: &command.Command{Name: "echo", Args: []string{"hi"}},
		},
		{
			name: "whitespace splits before quotes are considered",
			line: "echo 'hi there' now",
			want: &command.Command{Name: "echo", Args: []string{"'hi", "there'", "now"}},
		},
		{
			name: "quoted phrase alone is still split",
			line: "echo 'hi there'",
			want: &command.Command{Name: "echo", Args: []string{"'hi", "there'"}},
		},
		{
			name: "two character quote pair is kept",
			line: `echo ''`,
			want: &command.Command{Name: "echo", Args: []string{"''"}},
		},
		{
			name: "mismatched quotes are kept",
			line: `echo 'abc"`,
			want: &command.Command{Name: "echo", Args: []string{`'abc"`}},
		},
		{
			name: "input redirect glued",
			line: "sort <in.txt",
			want: &command.Command{Name: "sort", Redirects: redirects("in.txt", "", "")},
		},
		{
			name: "input redirect separated",
			line: "sort < in.txt -r",
			want: &command.Command{Name: "sort", Args: []string{"-r"}, Redirects: redirects("in.txt", "", "")},
		},
		{
			name: "append redirect",
			line: "echo hi >>log.txt",
			want: &command.Command{Name: "echo", Args: []string{"hi"}, Redirects: redirects("", "", "log.txt")},
		},
		{
			name: "append redirect separated",
			line: "echo hi >> log.txt",
			want: &command.Command{Name: "echo", Args: []string{"hi"}, Redirects: redirects("", "", "log.txt")},
		},
		{
			name: "later output redirect wins",
			line: "echo hi >a.txt >>b.txt",
			want: &command.Command{Name: "echo", Args: []string{"hi"}, Redirects: redirects("", "", "b.txt")},
		},
		{
			name: "redirect without a path is ignored",
			line: "cat >",
			want: &command.Command{Name: "cat"},
		},
		{
			name: "redirect does not swallow a pipe",
			line: "cat > | wc",
			want: &command.Command{Name: "cat", Next: &command.Command{Name: "wc"}},
		},
		{
			name: "trailing pipe adds no stage",
			line: "ls |",
			want: &command.Command{Name: "ls"},
		},
		{
			name: "three stages",
			line: "cat <in | sort -r | uniq -c >>out",
			want: &command.Command{
				Name:      "cat",
				Redirects: redirects("in", "", ""),
				Next: &command.Command{
					Name: "sort",
					Args: []string{"-r"},
					Next: &command.Command{
						Name:      "uniq",
						Args:      []string{"-c"},
						Redirects: redirects("", "", "out"),
					},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.Parse(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WhitespaceParser.Parse(%q) diff:\ngot : %s\nwant: %s", tt.line, dump(got), dump(tt.want))
			}
		})
	}
}

func TestWhitespaceParser_ArgCountWithoutPipes(t *testing.T) {
	parser := NewWhitespaceParser()
	lines := []string{
		"ls",
		"ls -l",
		"git commit -m message",
		"  printf %s\\n a b c d e  ",
		"a b\tc  d\t\te",
	}
	for _, line := range lines {
		tokens := strings.Fields(line)
		got := parser.Parse(line)
		if got.Len() != 1 {
			t.Errorf("Parse(%q) produced %d stages, want 1", line, got.Len())
		}
		if len(got.Args) != len(tokens)-1 {
			t.Errorf("Parse(%q) produced %d args, want %d", line, len(got.Args), len(tokens)-1)
		}
	}
}

func dump(c *command.Command) string {
	var b strings.Builder
	c.Describe(&b)
	return b.String()
}
