package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SingleSegment(t *testing.T) {
	p, err := Parse("echo hello world")
	require.NoError(t, err)
	require.Len(t, p.Segments, 1)
	assert.Equal(t, []string{"echo", "hello", "world"}, p.Segments[0].Words)
}

func TestParse_BlankLine(t *testing.T) {
	p, err := Parse("   ")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestParse_Pipeline(t *testing.T) {
	p, err := Parse("cat file.txt | grep foo | wc -l")
	require.NoError(t, err)
	require.Len(t, p.Segments, 3)
	assert.Equal(t, []string{"cat", "file.txt"}, p.Segments[0].Words)
	assert.Equal(t, []string{"grep", "foo"}, p.Segments[1].Words)
	assert.Equal(t, []string{"wc", "-l"}, p.Segments[2].Words)
}

func TestParse_OutputRedirection(t *testing.T) {
	p, err := Parse("ls > out.txt")
	require.NoError(t, err)
	require.Len(t, p.Segments, 1)
	seg := p.Segments[0]
	assert.Equal(t, []string{"ls"}, seg.Words)
	require.Len(t, seg.Redirs, 1)
	assert.Equal(t, Redirection{FD: 1, Target: "out.txt", Append: false}, seg.Redirs[0])
}

func TestParse_AppendWithAltFDSyntax(t *testing.T) {
	p, err := Parse("ls nonexistent 1>> out.txt")
	require.NoError(t, err)
	seg := p.Segments[0]
	require.Len(t, seg.Redirs, 1)
	assert.Equal(t, Redirection{FD: 1, Target: "out.txt", Append: true}, seg.Redirs[0])
}

func TestParse_StderrRedirection(t *testing.T) {
	p, err := Parse("ls nonexistent 2> err.txt")
	require.NoError(t, err)
	seg := p.Segments[0]
	require.Len(t, seg.Redirs, 1)
	assert.Equal(t, Redirection{FD: 2, Target: "err.txt", Append: false}, seg.Redirs[0])
}

func TestParse_MultipleRedirectsSameFD_LastWins(t *testing.T) {
	p, err := Parse("echo hi > first.txt > second.txt")
	require.NoError(t, err)
	seg := p.Segments[0]
	require.Len(t, seg.Redirs, 2)
	assert.Equal(t, "first.txt", seg.Redirs[0].Target)
	assert.Equal(t, "second.txt", seg.Redirs[1].Target)
}

func TestParse_EmptySegment(t *testing.T) {
	_, err := Parse("echo hi | | wc -l")
	assert.ErrorIs(t, err, ErrEmptySegment)
}

func TestParse_LeadingPipeIsEmptySegment(t *testing.T) {
	_, err := Parse("| echo hi")
	assert.ErrorIs(t, err, ErrEmptySegment)
}

func TestParse_RedirMissingTarget(t *testing.T) {
	_, err := Parse("echo hi >")
	assert.ErrorIs(t, err, ErrRedirMissingTarget)
}

func TestParse_RedirFollowedByPipeIsMissingTarget(t *testing.T) {
	_, err := Parse("echo hi > | wc -l")
	assert.ErrorIs(t, err, ErrRedirMissingTarget)
}
