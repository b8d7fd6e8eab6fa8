package classify

import (
	"github.com/retroenv/snesgoanalyzer/internal/arch/w65816"
	"github.com/retroenv/snesgoanalyzer/internal/snes"
)

const (
	codeMinValidTargetRatio = 0.5
	codeMaxScore            = 0.95
)

// codeClassifier scores a window by decoding it as a 65C816 instruction
// stream and checking how plausible the resulting control flow is.
type codeClassifier struct {
	decoder    *w65816.Decoder
	translator *snes.Translator
}

func newCodeClassifier(decoder *w65816.Decoder, translator *snes.Translator) *codeClassifier {
	return &codeClassifier{
		decoder:    decoder,
		translator: translator,
	}
}

func (c *codeClassifier) Name() string {
	return "code"
}

// Classify decodes the window assuming 8 bit register widths and scores
// the stream by the ratio of defined opcodes and the ratio of control
// flow transfers whose targets land inside mapped ROM. Instructions
// clipped by the window end do not count as defined.
func (c *codeClassifier) Classify(window []byte, offset int) (Tag, float64) {
	bank, bankOffset, err := c.translator.FromFileOffset(snes.FileOffset(offset))
	if err != nil {
		return TagUnknown, 0
	}
	address := uint32(bank)<<16 | uint32(bankOffset)

	flags := w65816.NewStatusFlags()
	pos := 0
	total := 0
	defined := 0
	flowTotal := 0
	flowValid := 0

	for pos < len(window) {
		ins, nextFlags := c.decoder.Decode(window, pos, address+uint32(pos), flags)
		flags = nextFlags
		total++

		if !ins.IsUndefined() && ins.Opcode != 0x00 && !ins.Truncated {
			defined++
		}
		if ins.HasTarget {
			flowTotal++
			if c.translator.Contains(ins.Target) {
				flowValid++
			}
		}

		pos += int(ins.Size)
	}

	if total == 0 {
		return TagUnknown, 0
	}

	definedRatio := float64(defined) / float64(total)
	if flowTotal == 0 {
		return TagCode, definedRatio * 0.3
	}

	validRatio := float64(flowValid) / float64(flowTotal)
	if validRatio < codeMinValidTargetRatio {
		return TagCode, definedRatio * 0.25
	}

	score := 0.4*definedRatio + 0.6*validRatio
	if score > codeMaxScore {
		score = codeMaxScore
	}
	return TagCode, score
}
