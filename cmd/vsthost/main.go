//go:build linux || darwin

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/hq9000/vsthost/analysis"
	"github.com/hq9000/vsthost/audiofile"
	"github.com/hq9000/vsthost/engine"
	"github.com/hq9000/vsthost/runtime"
)

func main() {
	var (
		pluginPath  = flag.String("plugin", "", "Path to the plugin shared object")
		note        = flag.Int("note", 69, "MIDI note to play (synth plugins)")
		durationMS  = flag.Int("duration", 500, "Note duration in milliseconds")
		sampleRate  = flag.Float64("rate", 44100, "Sample rate in Hz")
		blockSize   = flag.Int("block", 512, "Maximum frames per process call")
		outFile     = flag.String("out", "", "Write rendered audio to this WAV file")
		inFile      = flag.String("in", "", "Process this audio file through the plugin (WAV/MP3/Ogg)")
		configFile  = flag.String("config", "", "Optional YAML host configuration")
		verbose     = flag.Bool("verbose", false, "Log host activity and keep plugin stdio visible")
		interactive = flag.Bool("i", false, "Interactive parameter browser")
	)
	flag.Parse()

	if *pluginPath == "" && flag.NArg() > 0 {
		*pluginPath = flag.Arg(0)
	}
	if *pluginPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: vsthost -plugin <file.so> [-note N] [-duration ms] [-out file.wav]")
		fmt.Fprintln(os.Stderr, "       vsthost -plugin <file.so> -in input.wav -out output.wav")
		fmt.Fprintln(os.Stderr, "       vsthost -plugin <file.so> -i  (interactive mode)")
		os.Exit(1)
	}

	cfg := sessionConfig{
		SampleRate: *sampleRate,
		BlockSize:  int32(*blockSize),
		Note:       uint8(*note),
		Duration:   time.Duration(*durationMS) * time.Millisecond,
		Verbose:    *verbose,
	}
	if *configFile != "" {
		if err := cfg.mergeFile(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if cfg.Verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		engine.SetLogger(logger.Named("engine"))
		runtime.SetLogger(logger.Named("runtime"))
	}

	if *interactive {
		if err := runInteractive(*pluginPath, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*pluginPath, *inFile, *outFile, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(pluginPath, inFile, outFile string, cfg sessionConfig) error {
	sh := runtime.NewSimpleHost(
		runtime.WithSampleRate(cfg.SampleRate),
		runtime.WithBlockSize(cfg.BlockSize),
		runtime.WithVerbose(cfg.Verbose),
	)
	if err := sh.LoadPlugin(pluginPath); err != nil {
		return err
	}
	defer sh.Close()

	p := sh.Plugin()
	fmt.Printf("Plugin: %s\n", pluginPath)
	fmt.Printf("Name: %s (%s)\n", p.Name(), p.Vendor())
	fmt.Printf("Category: %s, VST version: %d\n", p.Category(), p.VSTVersion())
	fmt.Printf("Parameters: %d, inputs: %d, outputs: %d\n", p.NumParams(), p.NumInputs(), p.NumOutputs())

	if err := sh.Open(); err != nil {
		return err
	}
	if err := sh.Resume(); err != nil {
		return err
	}

	printParameters(p)

	// Nudge the first two parameters, then show the effect.
	if p.NumParams() > 0 {
		p.SetParamValue(0, 0.8)
	}
	if p.NumParams() > 1 {
		p.SetParamValue(1, 0.3)
	}
	fmt.Println("\nAfter mutating parameters 0 and 1:")
	printParameters(p)

	if inFile != "" {
		return processFile(p, inFile, outFile, cfg)
	}
	return playTwice(sh, outFile, cfg)
}

func printParameters(p *runtime.Plugin) {
	n := p.NumParams()
	if n > 10 {
		n = 10
	}
	fmt.Println("\nParameters:")
	for i := int32(0); i < n; i++ {
		fmt.Printf("  %2d  %-20s %8.4f  %s %s\n",
			i, p.ParamName(i), p.ParamValue(i), p.ParamDisplay(i), p.ParamLabel(i))
	}
	if p.NumParams() > n {
		fmt.Printf("  ... %d more\n", p.NumParams()-n)
	}
}

// playTwice renders the configured note twice, reporting level and pitch
// for each take. The second take shows that rendering is repeatable.
func playTwice(sh *runtime.SimpleHost, outFile string, cfg sessionConfig) error {
	var last [][]float32
	for take := 1; take <= 2; take++ {
		audio, err := sh.PlayNote(cfg.Note, cfg.Duration)
		if err != nil {
			return err
		}
		last = audio

		rms := analysis.RMS(audio[0])
		freq, err := analysis.DominantFrequency(audio[0], cfg.SampleRate)
		if err != nil {
			return err
		}
		fmt.Printf("\nTake %d: %d channels x %d frames, RMS %.4f, dominant %.1f Hz\n",
			take, len(audio), len(audio[0]), rms, freq)
	}

	if outFile != "" {
		clip := &audiofile.Clip{SampleRate: int(cfg.SampleRate), Channels: last}
		if err := audiofile.SaveWAV(outFile, clip); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", outFile)
	}
	return nil
}

// processFile runs a decoded audio file through an effect plugin block by
// block and optionally writes the result.
func processFile(p *runtime.Plugin, inFile, outFile string, cfg sessionConfig) error {
	clip, err := audiofile.Load(inFile)
	if err != nil {
		return err
	}
	fmt.Printf("\nInput: %s, %d channels x %d frames at %d Hz\n",
		inFile, clip.NumChannels(), clip.Frames(), clip.SampleRate)

	channels := int(p.NumInputs())
	block := int(cfg.BlockSize)

	in, err := engine.NewBuffer(engine.Single, channels, block)
	if err != nil {
		return err
	}
	defer in.Free()
	out, err := engine.NewBuffer(engine.Single, int(p.NumOutputs()), block)
	if err != nil {
		return err
	}
	defer out.Free()

	result := make([][]float32, p.NumOutputs())
	for pos := 0; pos < clip.Frames(); pos += block {
		in.Zero()
		for ch := 0; ch < channels && ch < clip.NumChannels(); ch++ {
			end := pos + block
			if end > clip.Frames() {
				end = clip.Frames()
			}
			copy(in.Float32()[ch], clip.Channels[ch][pos:end])
		}
		if err := p.ProcessInto(out, in); err != nil {
			return err
		}
		for ch := range result {
			result[ch] = append(result[ch], out.Float32()[ch]...)
		}
	}

	fmt.Printf("Processed: RMS %.4f\n", analysis.RMS(result[0]))
	if outFile != "" {
		if err := audiofile.SaveWAV(outFile, &audiofile.Clip{SampleRate: clip.SampleRate, Channels: result}); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", outFile)
	}
	return nil
}
