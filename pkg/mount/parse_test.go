package mount

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMount(t *testing.T) {
	input := Text(`/dev/sda1 on / type ext4 (rw,relatime,errors=remount-ro)
proc on /proc type proc (rw,nosuid,nodev,noexec,relatime)
tmpfs on /run type tmpfs (rw,nosuid,nodev,mode=755)`)

	res, err := Parse(input, SyntaxMount)
	require.NoError(t, err)
	require.Len(t, res.Records, 3)
	assert.Zero(t, res.Skipped)

	rec := res.Records[0]
	assert.Equal(t, "/dev/sda1", rec.Source)
	assert.Equal(t, "/", rec.MountPoint)
	assert.Equal(t, "ext4", rec.FSType)
	assert.Equal(t, []string{"rw", "relatime", "errors=remount-ro"}, rec.Options)
	assert.Equal(t, SyntaxMount, rec.Syntax)

	rec = res.Records[1]
	assert.Equal(t, "proc", rec.Source)
	assert.Equal(t, "proc", rec.FSType)
}

func TestParseMountEmbeddedSpaces(t *testing.T) {
	// Mount points may contain spaces; only the rightmost anchors are
	// trustworthy.
	input := Text(`/dev/sda1 on /mnt/my files type ext4 (rw,relatime)`)

	res, err := Parse(input, SyntaxMount)
	require.NoError(t, err)
	require.Len(t, res.Records, 1)

	rec := res.Records[0]
	assert.Equal(t, "/dev/sda1", rec.Source)
	assert.Equal(t, "/mnt/my files", rec.MountPoint)
	assert.Equal(t, "ext4", rec.FSType)
}

func TestParseMountFUSESource(t *testing.T) {
	input := Text(`user@host:/ on /mnt/remote type fuse.sshfs (rw,nosuid,nodev,user=alice)`)

	res, err := Parse(input, SyntaxMount)
	require.NoError(t, err)
	require.Len(t, res.Records, 1)

	rec := res.Records[0]
	assert.Equal(t, "user@host:/", rec.Source)
	assert.Equal(t, "/mnt/remote", rec.MountPoint)
	assert.Equal(t, "fuse.sshfs", rec.FSType)
}

func TestParseMountBSDForm(t *testing.T) {
	input := Text(`/dev/disk1s1 on / (apfs, local, journaled)
map auto_home on /System/Volumes/Data/home (autofs, automounted, nobrowse)`)

	res, err := Parse(input, SyntaxMount)
	require.NoError(t, err)
	require.Len(t, res.Records, 2)

	rec := res.Records[0]
	assert.Equal(t, "/dev/disk1s1", rec.Source)
	assert.Equal(t, "/", rec.MountPoint)
	assert.Equal(t, "apfs", rec.FSType)
	assert.Equal(t, []string{"local", "journaled"}, rec.Options)

	rec = res.Records[1]
	assert.Equal(t, "map auto_home", rec.Source)
	assert.Equal(t, "autofs", rec.FSType)
}

func TestParseMountSkipsMalformed(t *testing.T) {
	input := Text(`/dev/sda1 on / type ext4 (rw,relatime)
this line is garbage
proc on /proc type proc (rw)
another bad line without anchors`)

	res, err := Parse(input, SyntaxMount)
	require.NoError(t, err)
	assert.Len(t, res.Records, 2)
	assert.Equal(t, 2, res.Skipped)
	assert.Len(t, res.Warnings, 2)
	assert.Contains(t, res.Warnings[0], "line 2")
}

func TestParseEmptyInput(t *testing.T) {
	for _, syntax := range []Syntax{SyntaxMount, SyntaxFstab, SyntaxDF} {
		res, err := Parse(Text(""), syntax)
		require.NoError(t, err)
		assert.Empty(t, res.Records)
		assert.Zero(t, res.Skipped)
	}

	res, err := Parse(Text("   \n\n  \n"), SyntaxMount)
	require.NoError(t, err)
	assert.Empty(t, res.Records)
	assert.Zero(t, res.Skipped)
}

func TestParseUnknownSyntax(t *testing.T) {
	_, err := Parse(Text("x"), Syntax("winmount"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown syntax")
}

func TestParseFstab(t *testing.T) {
	input := Text(`# /etc/fstab
UUID=abcd-1234  /      ext4  rw,relatime,errors=remount-ro  0  1

/dev/sdb1  /data  xfs  defaults  1  2
proc  /proc  proc  defaults  0  0
/dev/sda2  none  swap  sw  0  0`)

	res, err := Parse(input, SyntaxFstab)
	require.NoError(t, err)
	require.Len(t, res.Records, 4)
	assert.Zero(t, res.Skipped)

	rec := res.Records[0]
	assert.Equal(t, "UUID=abcd-1234", rec.Source)
	assert.Equal(t, "/", rec.MountPoint)
	assert.Equal(t, "ext4", rec.FSType)
	assert.Equal(t, []string{"rw", "relatime", "errors=remount-ro"}, rec.Options)
	assert.Equal(t, "0", rec.Dump)
	assert.Equal(t, "1", rec.Pass)

	rec = res.Records[3]
	assert.Equal(t, "swap", rec.FSType)
	assert.Equal(t, "none", rec.MountPoint)
}

func TestParseFstabShortForm(t *testing.T) {
	// Dump and pass are optional.
	res, err := Parse(Text(`/dev/sdb1 /data xfs defaults`), SyntaxFstab)
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Empty(t, res.Records[0].Dump)
	assert.Empty(t, res.Records[0].Pass)

	res, err = Parse(Text(`/dev/sdb1 /data xfs defaults 1`), SyntaxFstab)
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "1", res.Records[0].Dump)
	assert.Empty(t, res.Records[0].Pass)
}

func TestParseFstabOctalEscapes(t *testing.T) {
	res, err := Parse(Text(`/dev/sdb1 /mnt/my\040files ext4 defaults 0 2`), SyntaxFstab)
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "/mnt/my files", res.Records[0].MountPoint)
}

func TestParseFstabSkipsMalformed(t *testing.T) {
	input := Text(`/dev/sda1 /
/dev/sdb1 /data xfs defaults 0 2 extra-field
/dev/sdc1 /srv ext4 defaults 0 2`)

	res, err := Parse(input, SyntaxFstab)
	require.NoError(t, err)
	assert.Len(t, res.Records, 1)
	assert.Equal(t, 2, res.Skipped)
}

func TestParseDF(t *testing.T) {
	input := Text(`Filesystem     1K-blocks    Used Available Use% Mounted on
/dev/sda1       41152736 8124580  30915064  21% /
tmpfs            4046856       0   4046856   0% /dev/shm`)

	res, err := Parse(input, SyntaxDF)
	require.NoError(t, err)
	require.Len(t, res.Records, 2)

	rec := res.Records[0]
	assert.Equal(t, "/dev/sda1", rec.Source)
	assert.Equal(t, "/", rec.MountPoint)
	assert.Equal(t, uint64(1024), rec.BlockSize)
	require.NotNil(t, rec.Total)
	assert.Equal(t, uint64(41152736), *rec.Total)
	require.NotNil(t, rec.Used)
	assert.Equal(t, uint64(8124580), *rec.Used)
	assert.Equal(t, SyntaxDF, rec.Syntax)
}

func TestParseDFHeaderBlockSizes(t *testing.T) {
	tests := []struct {
		header string
		want   uint64
	}{
		{"Filesystem 1K-blocks Used Available Use% Mounted on", 1024},
		{"Filesystem 512-blocks Used Available Use% Mounted on", 512},
		{"Filesystem 1M-blocks Used Available Use% Mounted on", 1024 * 1024},
		{"Filesystem 4K-blocks Used Available Use% Mounted on", 4096},
		// Unrecognized headers keep the default.
		{"Filesystem Size Used Avail Use% Mounted on", 1024},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			input := Text(tt.header + "\n/dev/sda1 100 50 50 50% /")
			res, err := Parse(input, SyntaxDF)
			require.NoError(t, err)
			require.Len(t, res.Records, 1)
			assert.Equal(t, tt.want, res.Records[0].BlockSize)
		})
	}
}

func TestParseDFEmbeddedSpaces(t *testing.T) {
	input := Text(`Filesystem 1K-blocks Used Available Use% Mounted on
/dev/sdb1 1000 500 500 50% /mnt/my files`)

	res, err := Parse(input, SyntaxDF)
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "/mnt/my files", res.Records[0].MountPoint)
}

func TestParseDFSkipsMalformed(t *testing.T) {
	input := Text(`Filesystem 1K-blocks Used Available Use% Mounted on
/dev/sda1 notanumber 50 50 50% /
/dev/sdb1 1000
/dev/sdc1 1000 500 500 50% /data`)

	res, err := Parse(input, SyntaxDF)
	require.NoError(t, err)
	assert.Len(t, res.Records, 1)
	assert.Equal(t, 2, res.Skipped)
}

func TestParseSyntax(t *testing.T) {
	s, err := ParseSyntax("")
	require.NoError(t, err)
	assert.Equal(t, SyntaxMount, s)

	s, err = ParseSyntax("fstab")
	require.NoError(t, err)
	assert.Equal(t, SyntaxFstab, s)

	_, err = ParseSyntax("lsblk")
	assert.Error(t, err)
}

func TestUnescapeFstab(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/plain/path", "/plain/path"},
		{`/mnt/my\040files`, "/mnt/my files"},
		{`/tab\011here`, "/tab\there"},
		{`/back\134slash`, `/back\slash`},
		// Incomplete escapes pass through untouched.
		{`/trailing\04`, `/trailing\04`},
		{`/notoctal\089`, `/notoctal\089`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, unescapeFstab(tt.in), "input %q", tt.in)
	}
}
