package audio

import (
	"github.com/gordonklaus/portaudio"

	"github.com/kaishuu0123/famines/famines"
)

const GLOBAL_VOLUME = 0.5

// Audio drains the console's sample queue from the portaudio callback
// thread. Underruns are masked with silence.
type Audio struct {
	stream         *portaudio.Stream
	SampleRate     float64
	outputChannels int
	queue          *famines.SampleQueue
}

func NewAudio(queue *famines.SampleQueue) *Audio {
	return &Audio{queue: queue}
}

func (a *Audio) Start() error {
	host, err := portaudio.DefaultHostApi()
	if err != nil {
		return err
	}
	parameters := portaudio.HighLatencyParameters(nil, host.DefaultOutputDevice)
	stream, err := portaudio.OpenStream(parameters, a.Callback)
	if err != nil {
		return err
	}
	if err := stream.Start(); err != nil {
		return err
	}
	a.stream = stream
	a.SampleRate = parameters.SampleRate
	a.outputChannels = parameters.Output.Channels
	return nil
}

func (a *Audio) Stop() error {
	return a.stream.Close()
}

func (a *Audio) Callback(out []float32) {
	var output float32
	for i := range out {
		if i%a.outputChannels == 0 {
			if sample, ok := a.queue.Pop(); ok {
				output = sample * GLOBAL_VOLUME
			} else {
				output = 0
			}
		}
		out[i] = output
	}
}
