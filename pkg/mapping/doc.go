// Package mapping connects MIDI sources to targets.
//
// A Mapping binds one source control to one target through a mode and, for
// buttons, an optional press duration processor. A Session holds the targets
// and mappings of one controller setup, routes incoming MIDI messages to all
// mappings whose source matches and produces the feedback messages for every
// target that changed.
//
// # Mapping Files
//
// Sessions are usually loaded from YAML:
//
//	targets:
//	  - name: volume
//	    type: absolute-continuous
//	    value: 0.5
//	  - name: preset
//	    type: absolute-discrete
//	    step: 0.125
//
//	mappings:
//	  - name: Volume fader
//	    source: {kind: cc, channel: 1, number: 7, character: range}
//	    target: volume
//	    mode:
//	      kind: absolute
//	      target_interval: [0.2, 0.8]
//	  - name: Preset encoder
//	    source: {kind: cc, channel: 1, number: 16, character: encoder-1}
//	    target: preset
//	    mode: {kind: relative, step_count: [1, 4], rotate: true}
//	  - name: Long press mute
//	    source: {kind: note, channel: 10, number: 36, character: button}
//	    target: mute
//	    mode: {kind: toggle}
//	    press: {fire_mode: when-button-released, min: 500ms}
//
// Channels are 1-based in files. Mappings without an id get a random UUID.
//
// # Environment
//
// Command line tools read EnvConfig from CTLMAP_* environment variables.
package mapping
