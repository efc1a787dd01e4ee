// Package audio procedurally generates the mission's sound data as
// 16-bit stereo PCM WAV byte slices at 44100 Hz: genre-specific ghost
// stingers, looping ambient soundscapes, and a room-size-driven reverb.
//
// # Components
//
//   - GenerateRoarSound, GenerateRepellentHitSound, GenerateDoorSlamSound:
//     short one-shot stingers (ghost roars, repellent hits, ghost door
//     slams).
//   - AmbientSoundscape: a 60-second background loop for a genre,
//     generated once and returned by GetLoopData.
//   - ReverbCalculator: derives decay, wet mix and dry mix from a room's
//     width and height in tiles, and applies a feedback comb filter to
//     WAV data with Apply.
//
// # Procedural Generation
//
// All audio is generated at runtime from a genre ID and a seed; the
// same inputs always yield the same bytes. No pre-rendered audio files
// are used.
//
// # Genres
//
// The genre IDs "fantasy", "scifi", "horror", "cyberpunk" and
// "postapoc" each select their own timbre parameters; any other ID
// uses the generic defaults.
//
// # Usage Example
//
//	roar := audio.GenerateRoarSound("horror", 42)
//
//	amb := audio.NewAmbientSoundscape("horror", 42)
//	loop := amb.GetLoopData()
//
//	rev := audio.NewReverbCalculator(12, 8)
//	roarInRoom := rev.Apply(roar)
//
// The package only produces sample data and reverb parameters; it does
// no playback, mixing, music layering or positional attenuation.
package audio
