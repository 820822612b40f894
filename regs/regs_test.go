package regs

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omibyte.io/ctucanfd/mmio"
	"omibyte.io/ctucanfd/regmap"
)

// words lists one value of every word type in the order of Map.Words.
func words() []any {
	return []any{
		DEVICE_ID_VERSION_REG(0),
		MODE_COMMAND_STATUS_SETTINGS_REG(0),
		INT_STAT_REG(0),
		INT_ENA_SET_REG(0),
		INT_ENA_CLR_REG(0),
		INT_MASK_SET_REG(0),
		INT_MASK_CLR_REG(0),
		BTR_REG(0),
		BTR_FD_REG(0),
		EWL_ERP_FAULT_STATE_REG(0),
		RXC_TXC_REG(0),
		ERR_NORM_ERR_FD_REG(0),
		CTR_PRES_REG(0),
		FILTER_A_MASK_REG(0),
		FILTER_A_VAL_REG(0),
		FILTER_B_MASK_REG(0),
		FILTER_B_VAL_REG(0),
		FILTER_C_MASK_REG(0),
		FILTER_C_VAL_REG(0),
		FILTER_RAN_LOW_REG(0),
		FILTER_RAN_HIGH_REG(0),
		FILTER_CONTROL_FILTER_STATUS_REG(0),
		RX_MEM_INFO_REG(0),
		RX_POINTERS_REG(0),
		RX_STATUS_RX_SETTINGS_REG(0),
		RX_DATA_REG(0),
		TX_STATUS_REG(0),
		TX_COMMAND_REG(0),
		TX_PRIORITY_REG(0),
		ERR_CAPT_ALC_REG(0),
		TRV_DELAY_SSP_CFG_REG(0),
		RX_COUNTER_REG(0),
		TX_COUNTER_REG(0),
		DEBUG_REGISTER_REG(0),
		YOLO_REG_REG(0),
		TIMESTAMP_LOW_REG(0),
		TIMESTAMP_HIGH_REG(0),
		LOG_TRIG_CONFIG_REG(0),
		LOG_CAPT_CONFIG_REG(0),
		LOG_STATUS_LOG_POINTERS_REG(0),
		LOG_COMMAND_REG(0),
		LOG_CAPT_EVENT_1_REG(0),
		LOG_CAPT_EVENT_2_REG(0),
	}
}

func TestMapValidates(t *testing.T) {
	require.NoError(t, Map.Validate())
	assert.Len(t, Map.Registers, 68)
	assert.Len(t, Map.Words, 43)
}

func TestRegisterOffsets(t *testing.T) {
	seen := map[uint32]string{}
	for _, r := range Map.Registers {
		if other, ok := seen[r.Offset]; ok {
			t.Errorf("%s and %s share offset %#x", other, r.Name, r.Offset)
		}
		seen[r.Offset] = r.Name
		assert.Equal(t, r.Name, Register(r.Offset).String())
	}

	assert.Equal(t, Register(0x0), DEVICE_ID)
	assert.Equal(t, Register(0x75), ALC)
	assert.Equal(t, Register(0x14c), TXTB1_DATA_20)
	assert.Equal(t, Register(0x514), LOG_CAPT_EVENT_2)
	assert.Equal(t, "Register(0x3)", Register(0x3).String())
}

func TestWordTypes(t *testing.T) {
	values := words()
	require.Len(t, values, len(Map.Words))

	for i, v := range values {
		word := &Map.Words[i]
		typ := reflect.TypeOf(v)
		assert.Equal(t, word.Name+"_REG", typ.Name())

		offset := reflect.ValueOf(v).MethodByName("Offset").Call(nil)[0].Uint()
		assert.Equal(t, uint64(word.Offset), offset, word.Name)
	}
}

// The raw word and the accessors describe the same bits: every getter returns
// the field as Map locates it and every setter changes only its own bits.
func TestAccessorsMatchMap(t *testing.T) {
	rng := rand.New(rand.NewSource(0xcafd))

	for i, v := range words() {
		word := &Map.Words[i]
		typ := reflect.TypeOf(v)

		t.Run(word.Name, func(t *testing.T) {
			for n := 0; n < 64; n++ {
				raw := rng.Uint32()
				value := reflect.New(typ).Elem()
				value.SetUint(uint64(raw))

				for _, f := range word.Fields {
					get := value.MethodByName("Get" + f.Name)
					set := value.Addr().MethodByName("Set" + f.Name)
					if f.Reserved {
						assert.False(t, get.IsValid(), "reserved field %s has a getter", f.Name)
						continue
					}
					require.True(t, get.IsValid(), "no getter for %s", f.Name)
					require.True(t, set.IsValid(), "no setter for %s", f.Name)

					assert.Equal(t, uint64(f.Get(raw)), asUint(get.Call(nil)[0]), f.Name)

					want := rng.Uint32() & f.Max()
					set.Call([]reflect.Value{fromUint(set.Type().In(0), want)})
					after := uint32(value.Uint())
					assert.Equal(t, raw&^f.Mask(), after&^f.Mask(), "%s touched other bits", f.Name)
					assert.Equal(t, want, f.Get(after), f.Name)

					value.SetUint(uint64(raw))
				}
			}
		})
	}
}

func asUint(v reflect.Value) uint64 {
	if v.Kind() == reflect.Bool {
		if v.Bool() {
			return 1
		}
		return 0
	}
	return v.Uint()
}

func fromUint(typ reflect.Type, v uint32) reflect.Value {
	if typ.Kind() == reflect.Bool {
		return reflect.ValueOf(v != 0)
	}
	return reflect.ValueOf(uint64(v)).Convert(typ)
}

func TestBitOrders(t *testing.T) {
	for i := range Map.Words {
		word := &Map.Words[i]
		lsb := word.Declaration(regmap.LSBFirst)
		msb := word.Declaration(regmap.MSBFirst)

		for _, order := range []regmap.BitOrder{regmap.LSBFirst, regmap.MSBFirst} {
			decl := word.Declaration(order)
			placed, err := regmap.Place(decl, order)
			require.NoError(t, err, word.Name)
			assert.Equal(t, decl, placed, "%s %s", word.Name, order)
		}

		require.Len(t, msb, len(lsb))
		for j := range lsb {
			assert.Equal(t, lsb[j], msb[len(msb)-1-j])
		}
	}
}

func TestEnumsFitFields(t *testing.T) {
	for _, word := range Map.Words {
		for _, f := range word.Fields {
			if f.Enum == "" {
				continue
			}
			e, ok := Map.Enum(f.Enum)
			require.True(t, ok, f.Enum)
			assert.LessOrEqual(t, e.Max(), f.Max(), "%s.%s", word.Name, f.Name)
		}
	}
}

func TestAliasedCodes(t *testing.T) {
	assert.Equal(t, ISN_FDSTF, ISN_FSTF)
	assert.Equal(t, LOG_CAPT_EVENT_2_EVNT_DET(0x1), BIT_ERR)
	for _, v := range []LOG_CAPT_EVENT_2_EVNT_DET{S_UP, IS_SYNC, IS_FDSTF, IS_FSTF} {
		assert.Equal(t, BIT_ERR, v)
	}

	e, ok := Map.Enum("LOG_CAPT_EVENT_2_EVNT_DET")
	require.True(t, ok)
	assert.Equal(t, []string{"BIT_ERR", "S_UP", "IS_SYNC", "IS_FDSTF", "IS_FSTF"}, e.Names(0x1))
	assert.Equal(t, []string{"ISN_FDSTF", "ISN_FSTF"}, e.Names(0x0))

	d, err := Map.Decode("LOG_CAPT_EVENT_2", 0x00000207)
	require.NoError(t, err)
	assert.Equal(t, []string{"BRS_EVNT"}, d.Fields[0].Names)
	assert.Equal(t, []string{"ST_ERR", "S_DOWN", "IS_PROP"}, d.Fields[2].Names)
}

func TestModeWord(t *testing.T) {
	var w MODE_COMMAND_STATUS_SETTINGS_REG
	w.SetFDE(FDE_ENABLE)
	w.SetRST(true)
	assert.Equal(t, MODE_COMMAND_STATUS_SETTINGS_REG(0x11), w)
	assert.Equal(t, FDE_ENABLE, w.GetFDE())
	assert.True(t, w.GetRST())

	w.SetRST(false)
	assert.False(t, w.GetRST())
	assert.Equal(t, MODE, w.Offset())
}

func TestTransmitBufferStatus(t *testing.T) {
	var w TX_STATUS_REG
	w.SetTX1S(TXT_RDY)
	w.SetTX3S(TXT_ABT)
	assert.Equal(t, TX_STATUS_REG(0x701), w)
	assert.Equal(t, TXT_ABT, w.GetTX3S())
	assert.Equal(t, TX_STATUS_TX1S(0), w.GetTX2S())

	// Every buffer status shares one enum
	_, ok := Map.Enum("TX_STATUS_TX4S")
	assert.False(t, ok)
}

func TestBitTiming(t *testing.T) {
	var w BTR_REG
	w.SetPROP(0x7f)
	w.SetSJW(0x1f)
	assert.Equal(t, BTR_REG(0xf800007f), w)

	w.SetBRP(0xff)
	assert.Equal(t, BTR_REG(0xfff8007f), w)
	assert.Equal(t, uint8(0xff), w.GetBRP())
	assert.Equal(t, uint8(0x7f), w.GetPROP())
	assert.Equal(t, uint8(0x1f), w.GetSJW())
}

func TestBusAccess(t *testing.T) {
	bus := mmio.NewMemory(0x800)
	require.NoError(t, bus.Write32(0x0, 0x0205cafd))

	id, err := Read[DEVICE_ID_VERSION_REG](bus)
	require.NoError(t, err)
	assert.Equal(t, CTU_CAN_FD_ID, id.GetDEVICE_ID())

	require.NoError(t, Modify(bus, func(w *TX_PRIORITY_REG) {
		w.SetTXT2P(5)
	}))
	raw, err := bus.Read32(uint32(TX_PRIORITY))
	require.NoError(t, err)
	assert.Equal(t, uint32(0x50), raw)

	short := mmio.NewMemory(0x10)
	_, err = Read[LOG_CAPT_EVENT_2_REG](short)
	assert.ErrorIs(t, err, mmio.ErrOutOfRange)
}
