// Package regs is the register map of the CTU CAN FD IP core.
//
// can_registers.go is generated from the IP-XACT description ctu_can_fd.xml.
// Every 32-bit word of the register block has its own type, and the field
// accessors of that type shift and mask the raw value in place:
//
//	var mode MODE_COMMAND_STATUS_SETTINGS_REG
//	mode.SetFDE(FDE_ENABLE)
//	mode.SetENA(ENABLED)
//	err := regs.Write(bus, mode)
//
// Registers narrower than a word share it with their neighbours, so MODE,
// COMMAND, STATUS and SETTINGS are all reached through one word at offset 0x4.
package regs

//go:generate go run ../cmd/regmap generate --in ctu_can_fd.xml --block CAN_Registers --package regs --out can_registers.go
