package replay

import (
	"bytes"
	"fmt"
	"io"

	replayfb "github.com/cbodonnell/blockdrop/flatbuffers/replay"
	"github.com/cbodonnell/blockdrop/pkg/game/types"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

// MaxDecodedSize bounds the size of a decompressed recording.
const MaxDecodedSize = 16 << 20

// Encode serializes the recording as a compressed flatbuffer.
func Encode(r *Recording) ([]byte, error) {
	b := SerializeRecordingFlatbuffer(r)

	compressed := bytes.NewBuffer(nil)
	compWriter, err := zstd.NewWriter(compressed, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if _, err := compWriter.Write(b); err != nil {
		return nil, fmt.Errorf("failed to compress recording: %v", err)
	}
	if err := compWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %v", err)
	}

	return compressed.Bytes(), nil
}

// Decode parses a recording produced by Encode.
func Decode(data []byte) (*Recording, error) {
	compReader, err := zstd.NewReader(bytes.NewReader(data), zstd.WithDecoderMaxMemory(MaxDecodedSize))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer compReader.Close()

	b, err := io.ReadAll(io.LimitReader(compReader, MaxDecodedSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read decompressed recording: %v", err)
	}
	if len(b) > MaxDecodedSize {
		return nil, fmt.Errorf("recording exceeds %d bytes", MaxDecodedSize)
	}

	r, err := DeserializeRecordingFlatbuffer(b)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize recording: %v", err)
	}

	return r, nil
}

func SerializeRecordingFlatbuffer(r *Recording) []byte {
	builder := flatbuffers.NewBuilder(1024)

	frames := make([]flatbuffers.UOffsetT, len(r.Frames))
	for i, f := range r.Frames {
		var actions flatbuffers.UOffsetT
		if len(f.Actions) > 0 {
			b := make([]byte, len(f.Actions))
			for j, a := range f.Actions {
				b[j] = byte(a)
			}
			actions = builder.CreateByteVector(b)
		}

		replayfb.FrameStart(builder)
		replayfb.FrameAddDeltaUs(builder, f.DeltaUs)
		if actions != 0 {
			replayfb.FrameAddActions(builder, actions)
		}
		frames[i] = replayfb.FrameEnd(builder)
	}
	replayfb.ReplayStartFramesVector(builder, len(frames))
	for i := len(frames) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(frames[i])
	}
	framesVector := builder.EndVector(len(frames))

	id := builder.CreateString(r.ID.String())

	replayfb.ReplayStart(builder)
	replayfb.ReplayAddId(builder, id)
	replayfb.ReplayAddSeed(builder, r.Seed)
	replayfb.ReplayAddFrames(builder, framesVector)
	builder.Finish(replayfb.ReplayEnd(builder))

	return builder.FinishedBytes()
}

// DeserializeRecordingFlatbuffer reads a recording, returning an error
// instead of panicking on a malformed buffer.
func DeserializeRecordingFlatbuffer(b []byte) (r *Recording, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r = nil
			err = fmt.Errorf("malformed recording: %v", rec)
		}
	}()

	if len(b) < flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("recording is too short")
	}

	replayFlatbuffer := replayfb.GetRootAsReplay(b, 0)

	id, err := uuid.ParseBytes(replayFlatbuffer.Id())
	if err != nil {
		return nil, fmt.Errorf("failed to parse recording id: %v", err)
	}

	n := replayFlatbuffer.FramesLength()
	if n > len(b)/flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("frame count %d exceeds buffer size", n)
	}

	r = &Recording{
		ID:     id,
		Seed:   replayFlatbuffer.Seed(),
		Frames: make([]Frame, n),
	}

	frameFlatbuffer := &replayfb.Frame{}
	for i := range r.Frames {
		if !replayFlatbuffer.Frames(frameFlatbuffer, i) {
			return nil, fmt.Errorf("missing frame %d", i)
		}
		r.Frames[i].DeltaUs = frameFlatbuffer.DeltaUs()
		if n := frameFlatbuffer.ActionsLength(); n > 0 {
			actions := make([]types.Action, n)
			for j, a := range frameFlatbuffer.ActionsBytes() {
				actions[j] = types.Action(a)
			}
			r.Frames[i].Actions = actions
		}
	}

	return r, nil
}
