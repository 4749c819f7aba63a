// SPDX-License-Identifier: MPL-2.0

package suites

import (
	"fmt"
	"strings"

	"github.com/glbench/glbench/internal/benchmark"
	"github.com/glbench/glbench/internal/glinfo"
)

// InfoSuiteName is the name of the context-query suite.
const InfoSuiteName = "glinfo"

var (
	versionStrings = []string{
		"OpenGL ES 3.2 Mesa 23.1.4",
		"OpenGL ES 2.0 (ANGLE 2.1.0 git hash: 1a2b3c4d5e6f)",
		"OpenGL ES-CM 1.1",
		"4.6.0 NVIDIA 535.54.03",
		"3.3 (Core Profile) Mesa 22.0.5",
	}

	// extensionString is a GL_EXTENSIONS list as reported by a Mesa GLES 3.2 driver.
	extensionString = strings.Join([]string{
		"GL_EXT_blend_minmax", "GL_EXT_multi_draw_arrays", "GL_EXT_texture_filter_anisotropic",
		"GL_EXT_texture_compression_s3tc", "GL_EXT_texture_compression_dxt1", "GL_EXT_texture_compression_rgtc",
		"GL_EXT_texture_format_BGRA8888", "GL_OES_compressed_ETC1_RGB8_texture", "GL_OES_depth24",
		"GL_OES_element_index_uint", "GL_OES_fbo_render_mipmap", "GL_OES_mapbuffer", "GL_OES_rgb8_rgba8",
		"GL_OES_standard_derivatives", "GL_OES_stencil8", "GL_OES_texture_3D", "GL_OES_texture_float",
		"GL_OES_texture_float_linear", "GL_OES_texture_half_float", "GL_OES_texture_half_float_linear",
		"GL_OES_texture_npot", "GL_OES_vertex_half_float", "GL_EXT_draw_instanced", "GL_EXT_texture_sRGB_decode",
		"GL_OES_EGL_image", "GL_OES_depth_texture", "GL_AMD_performance_monitor", "GL_OES_packed_depth_stencil",
		"GL_EXT_texture_type_2_10_10_10_REV", "GL_NV_conditional_render", "GL_OES_get_program_binary",
		"GL_APPLE_texture_max_level", "GL_EXT_discard_framebuffer", "GL_EXT_read_format_bgra",
		"GL_EXT_frag_depth", "GL_NV_fbo_color_attachments", "GL_OES_EGL_image_external", "GL_OES_EGL_sync",
		"GL_OES_vertex_array_object", "GL_OES_viewport_array", "GL_ANGLE_pack_reverse_row_order",
		"GL_ANGLE_texture_compression_dxt3", "GL_ANGLE_texture_compression_dxt5", "GL_EXT_occlusion_query_boolean",
		"GL_EXT_robustness", "GL_EXT_texture_rg", "GL_EXT_unpack_subimage", "GL_NV_draw_buffers",
		"GL_NV_read_buffer", "GL_NV_read_depth", "GL_NV_read_depth_stencil", "GL_NV_read_stencil",
		"GL_EXT_draw_buffers", "GL_EXT_map_buffer_range", "GL_KHR_debug", "GL_KHR_robustness",
		"GL_KHR_texture_compression_astc_ldr", "GL_OES_depth_texture_cube_map", "GL_OES_required_internalformat",
		"GL_OES_surfaceless_context", "GL_EXT_color_buffer_float", "GL_EXT_sRGB_write_control",
	}, " ")
)

// NewInfoSuite benchmarks parsing of context query strings and entry point lookup.
func NewInfoSuite() *benchmark.Suite {
	es32 := glinfo.ES(3, 2)

	return benchmark.NewSuite(InfoSuiteName).
		MustAdd("RunParseVersion", func() error {
			for _, s := range versionStrings {
				if _, err := glinfo.ParseVersion(s); err != nil {
					return err
				}
			}
			return nil
		}, benchmark.MustSpec("parse-version", benchmark.WithRepetitions(1000))).
		MustAdd("RunParseExtensions", func() error {
			ext := glinfo.ParseExtensions(extensionString)
			if !ext.HasAll("GL_KHR_debug", "GL_OES_depth24") {
				return fmt.Errorf("extension list lost entries: %d parsed", ext.Len())
			}
			return nil
		}, benchmark.MustSpec("parse-extensions", benchmark.WithRepetitions(1000))).
		MustAdd("RunLookupEntryPoints", func() error {
			for _, name := range glinfo.Available(es32) {
				if _, err := glinfo.Lookup(name, es32); err != nil {
					return err
				}
			}
			return nil
		}, benchmark.MustSpec("lookup-entry-points", benchmark.WithRepetitions(1000))).
		MustAdd("ListAvailable", func() error {
			if len(glinfo.Available(es32)) == 0 {
				return fmt.Errorf("no entry points available for %s", es32)
			}
			return nil
		}, nil)
}
