package engines

// p builds a parameter with the global [0,1] range.
func p(name string, def float64) Parameter {
	return Parameter{Name: name, Default: def, Min: 0.0, Max: 1.0}
}

// engineTable is the full engine catalog, one entry per id 0..56. Chain
// positions: 0 utility, 1 dynamics/EQ, 2 distortion/pitch, 3 modulation and
// spectral effects, 4 delays, 5 reverbs and spatial.
var engineTable = []Descriptor{
	{ID: 0, Name: "None", Category: CategoryUtility, Parameters: nil, MixParamIndex: -1, ChainPosition: 0},

	// Dynamics
	{ID: 1, Name: "Vintage Opto Compressor", Category: CategoryDynamics, ChainPosition: 1, MixParamIndex: 6, Parameters: []Parameter{
		p("threshold", 0.5), p("ratio", 0.3), p("attack", 0.3), p("release", 0.4), p("knee", 0.5), p("makeup gain", 0.5), p("mix", 1.0),
	}},
	{ID: 2, Name: "Classic VCA Compressor", Category: CategoryDynamics, ChainPosition: 1, MixParamIndex: 5, Parameters: []Parameter{
		p("threshold", 0.5), p("ratio", 0.4), p("attack", 0.2), p("release", 0.3), p("makeup gain", 0.5), p("mix", 1.0),
	}},
	{ID: 3, Name: "Transient Shaper", Category: CategoryDynamics, ChainPosition: 1, MixParamIndex: 3, Parameters: []Parameter{
		p("attack", 0.5), p("sustain", 0.5), p("output gain", 0.5), p("mix", 1.0),
	}},
	{ID: 4, Name: "Noise Gate", Category: CategoryDynamics, ChainPosition: 1, MixParamIndex: -1, Parameters: []Parameter{
		p("threshold", 0.3), p("range", 0.8), p("attack", 0.1), p("hold", 0.3), p("release", 0.4),
	}},
	{ID: 5, Name: "Mastering Limiter", Category: CategoryDynamics, ChainPosition: 1, MixParamIndex: -1, Parameters: []Parameter{
		p("threshold", 0.9), p("release", 0.3), p("lookahead", 0.2), p("output gain", 0.5),
	}},
	{ID: 6, Name: "Dynamic EQ", Category: CategoryDynamics, ChainPosition: 1, MixParamIndex: 6, Parameters: []Parameter{
		p("frequency", 0.5), p("threshold", 0.5), p("ratio", 0.4), p("attack", 0.2), p("release", 0.3), p("gain", 0.5), p("mix", 1.0),
	}},

	// EQ / filters
	{ID: 7, Name: "Parametric EQ", Category: CategoryEQFilter, ChainPosition: 1, MixParamIndex: -1, Parameters: []Parameter{
		p("low freq", 0.2), p("low gain", 0.5), p("mid freq", 0.5), p("mid gain", 0.5), p("mid q", 0.5), p("high freq", 0.8), p("high gain", 0.5), p("output", 0.5),
	}},
	{ID: 8, Name: "Vintage Console EQ", Category: CategoryEQFilter, ChainPosition: 1, MixParamIndex: -1, Parameters: []Parameter{
		p("low shelf", 0.5), p("low-mid gain", 0.5), p("high-mid gain", 0.5), p("high shelf", 0.5), p("drive", 0.3), p("output", 0.5),
	}},
	{ID: 9, Name: "Ladder Filter", Category: CategoryEQFilter, ChainPosition: 1, MixParamIndex: 4, Parameters: []Parameter{
		p("cutoff", 0.6), p("resonance", 0.3), p("drive", 0.2), p("envelope amount", 0.5), p("mix", 1.0),
	}},
	{ID: 10, Name: "State Variable Filter", Category: CategoryEQFilter, ChainPosition: 1, MixParamIndex: 4, Parameters: []Parameter{
		p("cutoff", 0.5), p("resonance", 0.3), p("mode", 0.0), p("drive", 0.2), p("mix", 1.0),
	}},
	{ID: 11, Name: "Formant Filter", Category: CategoryEQFilter, ChainPosition: 1, MixParamIndex: 3, Parameters: []Parameter{
		p("vowel", 0.5), p("resonance", 0.4), p("brightness", 0.5), p("mix", 1.0),
	}},
	{ID: 12, Name: "Envelope Filter", Category: CategoryEQFilter, ChainPosition: 1, MixParamIndex: 5, Parameters: []Parameter{
		p("sensitivity", 0.5), p("range", 0.5), p("resonance", 0.4), p("attack", 0.2), p("release", 0.4), p("mix", 1.0),
	}},
	{ID: 13, Name: "Comb Resonator", Category: CategoryEQFilter, ChainPosition: 1, MixParamIndex: 4, Parameters: []Parameter{
		p("frequency", 0.5), p("resonance", 0.5), p("feedback", 0.4), p("damping", 0.5), p("mix", 0.5),
	}},
	{ID: 14, Name: "Vocal Formant Filter", Category: CategoryEQFilter, ChainPosition: 1, MixParamIndex: 4, Parameters: []Parameter{
		p("vowel morph", 0.5), p("vowel blend", 0.5), p("resonance", 0.4), p("brightness", 0.5), p("mix", 0.5),
	}},

	// Distortion (ids 15..22)
	{ID: 15, Name: "Vintage Tube Preamp", Category: CategoryDistortion, ChainPosition: 2, MixParamIndex: 7, Parameters: []Parameter{
		p("drive", 0.3), p("bias", 0.5), p("bass", 0.5), p("mid", 0.5), p("treble", 0.5), p("presence", 0.5), p("output gain", 0.5), p("mix", 1.0),
	}},
	{ID: 16, Name: "Wave Folder", Category: CategoryDistortion, ChainPosition: 2, MixParamIndex: 3, Parameters: []Parameter{
		p("fold amount", 0.3), p("symmetry", 0.5), p("output gain", 0.5), p("mix", 0.5),
	}},
	{ID: 17, Name: "Harmonic Exciter", Category: CategoryDistortion, ChainPosition: 2, MixParamIndex: 3, Parameters: []Parameter{
		p("drive", 0.3), p("harmonics", 0.4), p("frequency", 0.7), p("mix", 0.3),
	}},
	{ID: 18, Name: "Bit Crusher", Category: CategoryDistortion, ChainPosition: 2, MixParamIndex: 3, Parameters: []Parameter{
		p("bit depth", 0.7), p("sample rate", 0.7), p("drive", 0.3), p("mix", 0.5),
	}},
	{ID: 19, Name: "Multiband Saturator", Category: CategoryDistortion, ChainPosition: 2, MixParamIndex: 6, Parameters: []Parameter{
		p("low drive", 0.3), p("mid drive", 0.3), p("high drive", 0.3), p("crossover low", 0.3), p("crossover high", 0.7), p("output", 0.5), p("mix", 1.0),
	}},
	{ID: 20, Name: "Muff Fuzz", Category: CategoryDistortion, ChainPosition: 2, MixParamIndex: 3, Parameters: []Parameter{
		p("drive", 0.5), p("tone", 0.5), p("volume", 0.5), p("mix", 1.0),
	}},
	{ID: 21, Name: "Rodent Distortion", Category: CategoryDistortion, ChainPosition: 2, MixParamIndex: 3, Parameters: []Parameter{
		p("drive", 0.5), p("filter", 0.5), p("volume", 0.5), p("mix", 1.0),
	}},
	{ID: 22, Name: "K-Style Overdrive", Category: CategoryDistortion, ChainPosition: 2, MixParamIndex: 3, Parameters: []Parameter{
		p("drive", 0.4), p("tone", 0.5), p("level", 0.5), p("mix", 1.0),
	}},

	// Modulation
	{ID: 23, Name: "Digital Chorus", Category: CategoryModulation, ChainPosition: 3, MixParamIndex: 5, Parameters: []Parameter{
		p("rate", 0.3), p("depth", 0.5), p("delay", 0.3), p("feedback", 0.2), p("width", 0.7), p("mix", 0.5),
	}},
	{ID: 24, Name: "Resonant Chorus", Category: CategoryModulation, ChainPosition: 3, MixParamIndex: 4, Parameters: []Parameter{
		p("rate", 0.3), p("depth", 0.5), p("resonance", 0.4), p("width", 0.7), p("mix", 0.5),
	}},
	{ID: 25, Name: "Analog Phaser", Category: CategoryModulation, ChainPosition: 3, MixParamIndex: 5, Parameters: []Parameter{
		p("rate", 0.3), p("depth", 0.5), p("stages", 0.5), p("feedback", 0.3), p("center freq", 0.5), p("mix", 0.5),
	}},
	{ID: 26, Name: "Ring Modulator", Category: CategoryModulation, ChainPosition: 3, MixParamIndex: 3, Parameters: []Parameter{
		p("frequency", 0.4), p("fine tune", 0.5), p("depth", 0.8), p("mix", 0.5),
	}},
	{ID: 27, Name: "Frequency Shifter", Category: CategoryModulation, ChainPosition: 3, MixParamIndex: 3, Parameters: []Parameter{
		p("shift amount", 0.5), p("fine", 0.5), p("feedback", 0.2), p("mix", 0.5),
	}},
	{ID: 28, Name: "Harmonic Tremolo", Category: CategoryModulation, ChainPosition: 3, MixParamIndex: 4, Parameters: []Parameter{
		p("rate", 0.4), p("depth", 0.6), p("crossover", 0.5), p("waveform", 0.0), p("mix", 1.0),
	}},
	{ID: 29, Name: "Classic Tremolo", Category: CategoryModulation, ChainPosition: 3, MixParamIndex: 4, Parameters: []Parameter{
		p("rate", 0.4), p("depth", 0.5), p("waveform", 0.0), p("stereo phase", 0.5), p("mix", 1.0),
	}},
	{ID: 30, Name: "Rotary Speaker", Category: CategoryModulation, ChainPosition: 3, MixParamIndex: 5, Parameters: []Parameter{
		p("speed", 0.5), p("acceleration", 0.5), p("horn level", 0.6), p("drum level", 0.5), p("drive", 0.2), p("mix", 1.0),
	}},

	// Pitch
	{ID: 31, Name: "Pitch Shifter", Category: CategoryPitch, ChainPosition: 2, MixParamIndex: 3, Parameters: []Parameter{
		p("pitch", 0.5), p("fine", 0.5), p("formant", 0.5), p("mix", 0.5),
	}},
	{ID: 32, Name: "Detune Doubler", Category: CategoryPitch, ChainPosition: 2, MixParamIndex: 3, Parameters: []Parameter{
		p("detune amount", 0.3), p("delay", 0.3), p("width", 0.7), p("mix", 0.5),
	}},
	{ID: 33, Name: "Intelligent Harmonizer", Category: CategoryPitch, ChainPosition: 2, MixParamIndex: 4, HeavyCPU: true, Parameters: []Parameter{
		p("interval", 0.5), p("key", 0.0), p("scale", 0.0), p("formant", 0.5), p("mix", 0.5),
	}},

	// Delay
	{ID: 34, Name: "Tape Echo", Category: CategoryDelay, ChainPosition: 4, MixParamIndex: 4, Parameters: []Parameter{
		p("time", 0.4), p("feedback", 0.35), p("wow flutter", 0.25), p("saturation", 0.3), p("mix", 0.35),
	}},
	{ID: 35, Name: "Digital Delay", Category: CategoryDelay, ChainPosition: 4, MixParamIndex: 4, Parameters: []Parameter{
		p("time", 0.4), p("feedback", 0.3), p("high cut", 0.7), p("ping pong", 0.0), p("mix", 0.3),
	}},
	{ID: 36, Name: "Magnetic Drum Echo", Category: CategoryDelay, ChainPosition: 4, MixParamIndex: 4, Parameters: []Parameter{
		p("time", 0.5), p("feedback", 0.4), p("head spacing", 0.5), p("drum age", 0.3), p("mix", 0.35),
	}},
	{ID: 37, Name: "Bucket Brigade Delay", Category: CategoryDelay, ChainPosition: 4, MixParamIndex: 4, Parameters: []Parameter{
		p("time", 0.4), p("feedback", 0.4), p("clock noise", 0.2), p("tone", 0.5), p("mix", 0.35),
	}},
	{ID: 38, Name: "Buffer Repeat", Category: CategoryDelay, ChainPosition: 4, MixParamIndex: 4, Parameters: []Parameter{
		p("division", 0.5), p("probability", 0.5), p("pitch", 0.5), p("feedback", 0.3), p("mix", 0.5),
	}},

	// Reverb
	{ID: 39, Name: "Plate Reverb", Category: CategoryReverb, ChainPosition: 5, MixParamIndex: 4, Parameters: []Parameter{
		p("size", 0.5), p("damping", 0.5), p("predelay", 0.2), p("width", 0.8), p("mix", 0.3),
	}},
	{ID: 40, Name: "Spring Reverb", Category: CategoryReverb, ChainPosition: 5, MixParamIndex: 4, Parameters: []Parameter{
		p("tension", 0.5), p("damping", 0.5), p("boing", 0.3), p("tone", 0.5), p("mix", 0.3),
	}},
	{ID: 41, Name: "Convolution Reverb", Category: CategoryReverb, ChainPosition: 5, MixParamIndex: 4, HeavyCPU: true, Parameters: []Parameter{
		p("ir select", 0.0), p("size", 0.5), p("predelay", 0.2), p("damping", 0.5), p("mix", 0.3),
	}},
	{ID: 42, Name: "Shimmer Reverb", Category: CategoryReverb, ChainPosition: 5, MixParamIndex: 5, HeavyCPU: true, Parameters: []Parameter{
		p("size", 0.6), p("shimmer amount", 0.5), p("pitch", 0.7), p("damping", 0.4), p("feedback", 0.4), p("mix", 0.3),
	}},
	{ID: 43, Name: "Gated Reverb", Category: CategoryReverb, ChainPosition: 5, MixParamIndex: 4, Parameters: []Parameter{
		p("size", 0.5), p("gate time", 0.4), p("damping", 0.5), p("predelay", 0.1), p("mix", 0.3),
	}},

	// Spatial
	{ID: 44, Name: "Stereo Widener", Category: CategorySpatial, ChainPosition: 5, MixParamIndex: 2, Parameters: []Parameter{
		p("width", 0.6), p("bass mono", 0.5), p("mix", 1.0),
	}},
	{ID: 45, Name: "Stereo Imager", Category: CategorySpatial, ChainPosition: 5, MixParamIndex: 3, Parameters: []Parameter{
		p("width", 0.5), p("center level", 0.5), p("rotation", 0.5), p("mix", 1.0),
	}},
	{ID: 46, Name: "Dimension Expander", Category: CategorySpatial, ChainPosition: 5, MixParamIndex: 3, Parameters: []Parameter{
		p("size", 0.5), p("amount", 0.5), p("brightness", 0.5), p("mix", 0.5),
	}},

	// Special / spectral
	{ID: 47, Name: "Spectral Freeze", Category: CategorySpecial, ChainPosition: 3, MixParamIndex: 3, HeavyCPU: true, Parameters: []Parameter{
		p("freeze", 0.0), p("spectral blur", 0.3), p("decay", 0.5), p("mix", 0.5),
	}},
	{ID: 48, Name: "Spectral Gate", Category: CategorySpecial, ChainPosition: 3, MixParamIndex: 5, Parameters: []Parameter{
		p("threshold", 0.4), p("ratio", 0.5), p("attack", 0.2), p("release", 0.4), p("frequency smear", 0.3), p("mix", 1.0),
	}},
	{ID: 49, Name: "Phased Vocoder", Category: CategorySpecial, ChainPosition: 3, MixParamIndex: 4, HeavyCPU: true, Parameters: []Parameter{
		p("bands", 0.5), p("formant shift", 0.5), p("pitch shift", 0.5), p("smear", 0.3), p("mix", 0.5),
	}},
	{ID: 50, Name: "Granular Cloud", Category: CategorySpecial, ChainPosition: 3, MixParamIndex: 5, HeavyCPU: true, Parameters: []Parameter{
		p("grain size", 0.4), p("density", 0.5), p("pitch scatter", 0.3), p("position", 0.5), p("texture", 0.5), p("mix", 0.5),
	}},
	{ID: 51, Name: "Chaos Generator", Category: CategorySpecial, ChainPosition: 3, MixParamIndex: 4, Parameters: []Parameter{
		p("rate", 0.3), p("depth", 0.4), p("chaos type", 0.0), p("smoothing", 0.5), p("mix", 0.3),
	}},
	{ID: 52, Name: "Feedback Network", Category: CategorySpecial, ChainPosition: 3, MixParamIndex: 4, HeavyCPU: true, Parameters: []Parameter{
		p("feedback", 0.4), p("delay spread", 0.5), p("modulation", 0.3), p("damping", 0.5), p("mix", 0.4),
	}},

	// Utility
	{ID: 53, Name: "Mid-Side Processor", Category: CategoryUtility, ChainPosition: 0, MixParamIndex: -1, Parameters: []Parameter{
		p("mid gain", 0.5), p("side gain", 0.5), p("width", 0.5), p("output", 0.5),
	}},
	{ID: 54, Name: "Gain Utility", Category: CategoryUtility, ChainPosition: 0, MixParamIndex: -1, Parameters: []Parameter{
		p("gain", 0.5), p("pan", 0.5), p("phase invert", 0.0), p("output", 0.5),
	}},
	{ID: 55, Name: "Mono Maker", Category: CategoryUtility, ChainPosition: 0, MixParamIndex: -1, Parameters: []Parameter{
		p("frequency", 0.3), p("amount", 1.0),
	}},
	{ID: 56, Name: "Phase Align", Category: CategoryUtility, ChainPosition: 0, MixParamIndex: -1, Parameters: []Parameter{
		p("low phase", 0.5), p("high phase", 0.5), p("delay", 0.5),
	}},
}
