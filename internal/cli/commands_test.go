package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"

	"omibyte.io/ctucanfd/mmio"
	"omibyte.io/ctucanfd/regs"
)

const shippedDescription = "../../regs/ctu_can_fd.xml"

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	newGoldie(t).Assert(t, "list", []byte(out))
}

func TestListFromDescription(t *testing.T) {
	builtin, err := execute(t, "list")
	require.NoError(t, err)

	described, err := execute(t, "list", "--in", shippedDescription, "--block", "CAN_Registers")
	require.NoError(t, err)
	assert.Equal(t, builtin, described)
}

func TestListJSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "list")
	require.NoError(t, err)

	var resp struct {
		Status string        `json:"status"`
		Data   []RegisterRow `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 68)
	assert.Equal(t, "ALC", resp.Data[40].Name)
	assert.Equal(t, "ERR_CAPT_ALC", resp.Data[40].Word)
	assert.Equal(t, uint32(0x75), resp.Data[40].Offset)
}

func TestDecode(t *testing.T) {
	out, err := execute(t, "decode", "log_capt_event_2", "0x207")
	require.NoError(t, err)
	newGoldie(t).Assert(t, "decode_log_capt_event_2", []byte(out))
}

func TestDecodeErrors(t *testing.T) {
	_, err := execute(t, "decode", "NO_SUCH_REG", "0")
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = execute(t, "decode", "MODE", "0x1_0000_0000")
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	out, err := execute(t, "--format", "json", "decode", "NO_SUCH_REG", "0")
	require.Error(t, err)
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, ErrCodeUsage, resp.Error.Code)
}

func TestEncode(t *testing.T) {
	out, err := execute(t, "encode", "SETTINGS", "FDE=FDE_ENABLE", "RST=true", "ENA=ENABLED")
	require.NoError(t, err)
	assert.Equal(t, "0x40000011\n", out)

	out, err = execute(t, "encode", "--start", "0x40000011", "MODE", "RST=false")
	require.NoError(t, err)
	assert.Equal(t, "0x40000010\n", out)

	out, err = execute(t, "--format", "json", "encode", "TX_PRIORITY", "TXT2P=5")
	require.NoError(t, err)
	var resp struct {
		Data EncodedWord `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, EncodedWord{Word: "TX_PRIORITY", Offset: 0x70, Raw: 0x50}, resp.Data)

	_, err = execute(t, "encode", "TX_PRIORITY", "TXT2P=8")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestEncodeWarnsOnReadOnlyField(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"encode", "TX_STATUS", "TX1S=TXT_RDY"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "0x00000001\n", stdout.String())
	assert.Contains(t, stderr.String(), "field is read-only")
	assert.Contains(t, stderr.String(), "TX1S")

	stderr.Reset()
	cmd = NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"encode", "TX_PRIORITY", "TXT2P=5"})
	require.NoError(t, cmd.Execute())
	assert.NotContains(t, stderr.String(), "read-only")
}

func TestLayout(t *testing.T) {
	out, err := execute(t, "layout", "BTR", "--msb-first")
	require.NoError(t, err)
	newGoldie(t).Assert(t, "layout_btr_msb", []byte(out))

	out, err = execute(t, "layout", "BTR")
	require.NoError(t, err)
	assert.Contains(t, out, "/* BTR @ 0x01c, lsb-first */")
	assert.Less(t, strings.Index(out, "prop"), strings.Index(out, "sjw"))
}

func TestCheck(t *testing.T) {
	out, err := execute(t, "check")
	require.NoError(t, err)
	assert.Equal(t, "CAN_Registers: 68 registers, 43 words, 21 enums, ok\n", out)

	out, err = execute(t, "check", "--in", shippedDescription)
	require.NoError(t, err)
	assert.Contains(t, out, "ok")
}

const overlapping = `<component><memoryMaps><memoryMap><addressBlock>
  <name>bad</name><width>32</width>
  <register><name>A</name><addressOffset>0</addressOffset><size>8</size>
    <field><name>F</name><bitOffset>0</bitOffset><bitWidth>1</bitWidth></field></register>
  <register><name>B</name><addressOffset>0</addressOffset><size>8</size>
    <field><name>G</name><bitOffset>4</bitOffset><bitWidth>1</bitWidth></field></register>
</addressBlock></memoryMap></memoryMaps></component>`

func TestCheckFailures(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.xml")
	require.NoError(t, os.WriteFile(bad, []byte(overlapping), 0o600))

	_, err := execute(t, "check", "--in", bad)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "share offset")

	_, err = execute(t, "check", "--in", filepath.Join(dir, "missing.xml"))
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = execute(t, "check", "--in", bad, "--block", "other")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestGenerate(t *testing.T) {
	out := filepath.Join(t.TempDir(), "regs", "can_registers.go")

	stdout, err := execute(t, "generate", "--in", shippedDescription, "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote "+out+" (43 words, 21 enums)")

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(src), "// Code generated by regmap generate. DO NOT EDIT.\n// Source: ctu_can_fd.xml\n\npackage regs\n"))
	assert.Contains(t, string(src), "func (r *TX_STATUS_REG) SetTX4S(value TX_STATUS_TX1S) {")
}

func TestGenerateToStdout(t *testing.T) {
	stdout, err := execute(t, "generate", "--in", shippedDescription, "--package", "canfd")
	require.NoError(t, err)
	assert.Contains(t, stdout, "package canfd\n")
	assert.NotContains(t, stdout, "wrote")
}

func TestGenerateTargets(t *testing.T) {
	dir := t.TempDir()
	desc, err := filepath.Abs(shippedDescription)
	require.NoError(t, err)

	cfg := filepath.Join(dir, "targets.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(`
targets:
  - name: second
    input: `+desc+`
    output: out/second/regs.go
    after: [first]
  - name: first
    input: `+desc+`
    block: CAN_Registers
    output: out/first/regs.go
`), 0o600))

	stdout, err := execute(t, "--format", "json", "generate", "--config", cfg, "--all")
	require.NoError(t, err)

	var resp struct {
		Data []GenerateResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "first", resp.Data[0].Target)
	assert.Equal(t, "second", resp.Data[1].Target)

	src, err := os.ReadFile(filepath.Join(dir, "out", "second", "regs.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "package second\n")

	_, err = execute(t, "generate", "--config", cfg)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = execute(t, "generate", "--config", cfg, "--target", "third")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestDumpFile(t *testing.T) {
	dump := make([]byte, 0x800)
	copy(dump[0:], []byte{0xfd, 0xca, 0x05, 0x02})
	copy(dump[0x68:], []byte{0x21, 0x08})
	path := filepath.Join(t.TempDir(), "block.bin")
	require.NoError(t, os.WriteFile(path, dump, 0o600))

	out, err := execute(t, "dump", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "DEVICE_ID_VERSION @ 0x000 = 0x0205cafd\n  DEVICE_ID        [15:0]  0xcafd  CTU_CAN_FD_ID\n")
	assert.Contains(t, out, "  TX1S             [3:0]   0x1  TXT_RDY\n")
	assert.Contains(t, out, "  TX4S             [15:12] 0x0\n")
	assert.Contains(t, out, "  TX3S             [11:8]  0x8  TXT_ETY\n")

	out, err = execute(t, "--format", "json", "dump", "--file", path)
	require.NoError(t, err)
	var resp struct {
		Data []DecodedWord `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	// Every word but the five made of write-only registers
	assert.Len(t, resp.Data, 38)
	assert.True(t, slices.ContainsFunc(resp.Data, func(d DecodedWord) bool { return d.Word == "RX_DATA" }))
	assert.False(t, slices.ContainsFunc(resp.Data, func(d DecodedWord) bool { return d.Word == "TX_COMMAND" }))

	_, err = execute(t, "dump")
	assert.Error(t, err)
}

// recordingBus remembers every offset read from it.
type recordingBus struct {
	*mmio.Memory
	reads []uint32
}

func (b *recordingBus) Read32(offset uint32) (uint32, error) {
	b.reads = append(b.reads, offset)
	return b.Memory.Read32(offset)
}

func TestReadWordsSkipsUnsafeReads(t *testing.T) {
	bus := &recordingBus{Memory: mmio.NewMemory(0x800)}

	words, err := readWords(&regs.Map, bus, false, zerolog.Nop())
	require.NoError(t, err)
	assert.Len(t, words, 37)
	assert.Len(t, bus.reads, 37)

	for _, offset := range []uint32{0x10, 0x18, 0x30, 0x64, 0x6c, 0x50c} {
		assert.NotContains(t, bus.reads, offset, "read %#x", offset)
	}
	assert.Contains(t, bus.reads, uint32(0x60))
	assert.Contains(t, bus.reads, uint32(0x4))

	bus.reads = nil
	words, err = readWords(&regs.Map, bus, true, zerolog.Nop())
	require.NoError(t, err)
	assert.Len(t, words, 38)
	assert.Contains(t, bus.reads, uint32(0x64))
	assert.NotContains(t, bus.reads, uint32(0x6c))
}

func TestDumpDevice(t *testing.T) {
	block := make([]byte, 0x800)
	copy(block[0:], []byte{0xfd, 0xca, 0x05, 0x02})
	path := filepath.Join(t.TempDir(), "mem")
	require.NoError(t, os.WriteFile(path, block, 0o600))

	out, err := execute(t, "dump", "--device", path)
	require.NoError(t, err)
	assert.Contains(t, out, "DEVICE_ID_VERSION @ 0x000 = 0x0205cafd\n")
	assert.NotContains(t, out, "RX_DATA @")
	assert.NotContains(t, out, "INT_ENA_CLR @")

	out, err = execute(t, "dump", "--device", path, "--read-effects")
	require.NoError(t, err)
	assert.Contains(t, out, "RX_DATA @ 0x064 = 0x00000000\n")
}
